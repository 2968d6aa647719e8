package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"ordering/internal/pkg/errs"
)

// GetProfileQueryHandler reads customer profiles from the database.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile queries.
// Requires a GORM database connection for query execution.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle executes the query to retrieve the customer's profile.
// Returns an object-not-found error when the customer has no profile yet.
func (h GetProfileQueryHandler) Handle(
	ctx context.Context,
	query GetProfileQuery,
) (GetProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	customerID := query.CustomerID()
	response := GetProfileQueryResponse{
		CustomerID: customerID,
		Addresses:  make([]ProfileAddressResponse, 0),
		Favorites:  make([]string, 0),
		Ratings:    make(map[string]int),
	}

	var currentLabel string
	err := h.db.WithContext(ctx).Raw(`
		SELECT current_label
		FROM profiles
		WHERE customer_id = ?
	`, customerID).Row().Scan(&currentLabel)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return GetProfileQueryResponse{}, errs.NewObjectNotFoundError("customerID", customerID)
	}
	if err != nil {
		return GetProfileQueryResponse{}, err
	}

	if err = h.readAddresses(ctx, customerID, currentLabel, &response); err != nil {
		return GetProfileQueryResponse{}, err
	}
	if err = h.readFavorites(ctx, customerID, &response); err != nil {
		return GetProfileQueryResponse{}, err
	}
	if err = h.readRatings(ctx, customerID, &response); err != nil {
		return GetProfileQueryResponse{}, err
	}

	return response, nil
}

func (h GetProfileQueryHandler) readAddresses(
	ctx context.Context,
	customerID, currentLabel string,
	response *GetProfileQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT label, address
		FROM profile_addresses
		WHERE customer_id = ?
		ORDER BY position
	`, customerID).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var address ProfileAddressResponse
		if err = rows.Scan(&address.Label, &address.Address); err != nil {
			return err
		}
		address.Current = address.Label == currentLabel
		response.Addresses = append(response.Addresses, address)
	}

	return rows.Err()
}

func (h GetProfileQueryHandler) readFavorites(
	ctx context.Context,
	customerID string,
	response *GetProfileQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT restaurant_name
		FROM profile_favorites
		WHERE customer_id = ?
		ORDER BY position
	`, customerID).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return err
		}
		response.Favorites = append(response.Favorites, name)
	}

	return rows.Err()
}

func (h GetProfileQueryHandler) readRatings(
	ctx context.Context,
	customerID string,
	response *GetProfileQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT dish_name, rating
		FROM profile_ratings
		WHERE customer_id = ?
	`, customerID).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var dish string
		var rating int
		if err = rows.Scan(&dish, &rating); err != nil {
			return err
		}
		response.Ratings[dish] = rating
	}

	return rows.Err()
}
