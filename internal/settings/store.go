package settings

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Source is the read interface handlers depend on, so tests can stub the
// settings fetch without a database.
type Source interface {
	GetCustomerSettings(ctx context.Context, customerID string) (*CustomerSettings, error)
}

// Store fetches customer settings from postgres.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// GetCustomerSettings loads the settings row for a customer. SQL NULLs map
// to absent fields so vertical defaults apply downstream.
func (s *Store) GetCustomerSettings(ctx context.Context, customerID string) (*CustomerSettings, error) {
	query, args, err := psql.
		Select(
			"customer_id",
			"business_name",
			"business_type",
			"appointments_enabled",
			"lead_capture_enabled",
			"after_hours_behavior",
			"transfer_number",
			"knowledge_content",
			"updated_at",
		).
		From("customer_settings").
		Where(sq.Eq{"customer_id": customerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build settings query: %w", err)
	}

	var (
		result             CustomerSettings
		businessName       sql.NullString
		businessType       sql.NullString
		appointments       sql.NullBool
		leadCapture        sql.NullBool
		afterHoursBehavior sql.NullString
		transferNumber     sql.NullString
		knowledgeContent   sql.NullString
		updatedAt          sql.NullTime
	)

	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(
		&result.CustomerID,
		&businessName,
		&businessType,
		&appointments,
		&leadCapture,
		&afterHoursBehavior,
		&transferNumber,
		&knowledgeContent,
		&updatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("customer settings not found: %s", customerID)
		}
		return nil, fmt.Errorf("scan customer settings: %w", err)
	}

	result.BusinessName = businessName.String
	result.BusinessType = businessType.String
	if appointments.Valid {
		v := appointments.Bool
		result.AppointmentsEnabled = &v
	}
	if leadCapture.Valid {
		v := leadCapture.Bool
		result.LeadCaptureEnabled = &v
	}
	result.AfterHoursBehavior = AfterHoursBehavior(afterHoursBehavior.String)
	result.TransferNumber = transferNumber.String
	result.KnowledgeContent = knowledgeContent.String
	if updatedAt.Valid {
		result.UpdatedAt = updatedAt.Time
	}

	return &result, nil
}
