package repositories

import (
	"database/sql"
	"fmt"

	"esim4travel/internal/models"
)

// ContentRepository handles FAQ, testimonial, support ticket and stats data
type ContentRepository struct {
	db *sql.DB
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// GetAllFAQ returns active FAQ entries grouped by category.
func (r *ContentRepository) GetAllFAQ() ([]*models.FAQItem, error) {
	return r.queryFAQ(`
		SELECT id, category, question, answer, display_order, is_active
		FROM faq_items WHERE is_active = TRUE ORDER BY category, display_order`)
}

// GetFAQByCategory returns active FAQ entries for one category.
func (r *ContentRepository) GetFAQByCategory(category string) ([]*models.FAQItem, error) {
	return r.queryFAQ(`
		SELECT id, category, question, answer, display_order, is_active
		FROM faq_items WHERE category = $1 AND is_active = TRUE ORDER BY display_order`, category)
}

func (r *ContentRepository) queryFAQ(query string, args ...interface{}) ([]*models.FAQItem, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query faq items: %w", err)
	}
	defer rows.Close()

	var items []*models.FAQItem
	for rows.Next() {
		item := &models.FAQItem{}
		if err := rows.Scan(&item.ID, &item.Category, &item.Question, &item.Answer,
			&item.DisplayOrder, &item.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan faq item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetFeaturedTestimonials returns up to 6 featured reviews, newest first.
func (r *ContentRepository) GetFeaturedTestimonials() ([]*models.Testimonial, error) {
	rows, err := r.db.Query(`
		SELECT id, customer_name, COALESCE(country, ''), rating, COALESCE(review_text, ''),
			COALESCE(destination_visited, ''), is_featured, created_at
		FROM testimonials WHERE is_featured = TRUE ORDER BY created_at DESC LIMIT 6`)
	if err != nil {
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []*models.Testimonial
	for rows.Next() {
		t := &models.Testimonial{}
		if err := rows.Scan(&t.ID, &t.CustomerName, &t.Country, &t.Rating, &t.ReviewText,
			&t.DestinationVisited, &t.IsFeatured, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

// CreateSupportTicket inserts a support request and returns its id.
func (r *ContentRepository) CreateSupportTicket(req *models.SupportTicketRequest) (int, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO support_tickets (customer_email, order_id, category, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		req.Email, req.OrderID, req.Category, req.Subject, req.Message).
		Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create support ticket: %w", err)
	}
	return id, nil
}

// GetStats returns catalog and completed-order counts.
func (r *ContentRepository) GetStats() (*models.StoreStats, error) {
	stats := &models.StoreStats{}
	err := r.db.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM destinations WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM orders WHERE status = 'completed')`).
		Scan(&stats.TotalDestinations, &stats.TotalOrders)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	return stats, nil
}
