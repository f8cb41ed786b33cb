package queries

import (
	"database/sql"
	"time"

	"meethere/internal/core/domain/model/order"
)

// OrderResponse represents a reservation order as returned by read operations.
// Status carries the human-readable name ("NoAudit", "Wait", "Finish", "Reject").
type OrderResponse struct {
	ID        int64
	UserID    string
	VenueID   int64
	StartTime time.Time
	Hours     int
	Total     int
	OrderTime time.Time
	Status    string
}

// PagedOrdersResponse represents one page of a paged order listing together
// with the total number of matching rows across all pages.
type PagedOrdersResponse struct {
	Orders   []OrderResponse
	Page     int
	PageSize int
	Total    int64
}

// orderColumns is the column list every order read selects, in scan order.
const orderColumns = `
	id,
	user_id,
	venue_id,
	start_time,
	hours,
	total,
	order_time,
	status`

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var status int

	err := rows.Scan(
		&resp.ID,
		&resp.UserID,
		&resp.VenueID,
		&resp.StartTime,
		&resp.Hours,
		&resp.Total,
		&resp.OrderTime,
		&status,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	resp.Status = order.Status(status).String()
	return resp, nil
}

func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
