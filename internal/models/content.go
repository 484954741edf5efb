package models

import "time"

// Testimonial is a customer review shown on the storefront
type Testimonial struct {
	ID                 int       `json:"id" db:"id"`
	CustomerName       string    `json:"customer_name" db:"customer_name"`
	Country            string    `json:"country" db:"country"`
	Rating             int       `json:"rating" db:"rating"`
	ReviewText         string    `json:"review_text" db:"review_text"`
	DestinationVisited string    `json:"destination_visited" db:"destination_visited"`
	IsFeatured         bool      `json:"is_featured" db:"is_featured"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

// FAQItem is a frequently asked question entry
type FAQItem struct {
	ID           int    `json:"id" db:"id"`
	Category     string `json:"category" db:"category"`
	Question     string `json:"question" db:"question"`
	Answer       string `json:"answer" db:"answer"`
	DisplayOrder int    `json:"display_order" db:"display_order"`
	IsActive     bool   `json:"is_active" db:"is_active"`
}

// SupportTicket is a customer support request
type SupportTicket struct {
	ID            int       `json:"id" db:"id"`
	CustomerEmail string    `json:"customer_email" db:"customer_email"`
	OrderID       *int      `json:"order_id" db:"order_id"`
	Category      string    `json:"category" db:"category"`
	Subject       string    `json:"subject" db:"subject"`
	Message       string    `json:"message" db:"message"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// StoreStats aggregates catalog and order counts for the stats endpoint
type StoreStats struct {
	TotalDestinations int `json:"total_destinations" db:"total_destinations"`
	TotalOrders       int `json:"total_orders" db:"total_orders"`
}

// InstallationGuide is a static set of eSIM setup steps per platform
type InstallationGuide struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}
