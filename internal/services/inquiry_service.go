package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Nikolino98/cordoba-casas-connect-main/internal/db"
	"github.com/Nikolino98/cordoba-casas-connect-main/internal/models"
)

// IInquiryService defines the interface for contact inquiry operations.
type IInquiryService interface {
	SubmitInquiry(ctx context.Context, inquiry *models.ContactInquiry) (*models.ContactInquiry, error)
	ListInquiries(ctx context.Context) ([]models.ContactInquiry, error)
	MarkInquiryRead(ctx context.Context, id int, leida bool) error
}

const inquiriesCollection = "consultas_contacto"

// ValidationError marks an inquiry rejected before reaching the store. The
// message is user-facing Spanish.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidationError reports whether err is a form validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateInquiry mirrors the contact form's field rules.
func validateInquiry(in *models.ContactInquiry) error {
	if len(strings.TrimSpace(in.Nombre)) < 2 {
		return &ValidationError{Field: "nombre", Message: "El nombre debe tener al menos 2 caracteres"}
	}
	if !emailShape.MatchString(in.Email) {
		return &ValidationError{Field: "email", Message: "Ingrese un email válido"}
	}
	if len(strings.TrimSpace(in.Telefono)) < 8 {
		return &ValidationError{Field: "telefono", Message: "Ingrese un teléfono válido"}
	}
	if len(strings.TrimSpace(in.Mensaje)) < 10 {
		return &ValidationError{Field: "mensaje", Message: "Escriba un mensaje de al menos 10 caracteres"}
	}
	return nil
}

// inquiryService implements IInquiryService.
type inquiryService struct {
	db *mongo.Database
}

// NewInquiryService creates a new InquiryService.
func NewInquiryService(database *mongo.Database) IInquiryService {
	return &inquiryService{db: database}
}

// SubmitInquiry validates and stores a contact form message. The property
// reference, when present, is stored as-is without checking the listing
// still exists.
func (s *inquiryService) SubmitInquiry(ctx context.Context, inquiry *models.ContactInquiry) (*models.ContactInquiry, error) {
	if err := validateInquiry(inquiry); err != nil {
		return nil, err
	}

	id, err := db.NextSequence(ctx, s.db, inquiriesCollection)
	if err != nil {
		return nil, err
	}
	inquiry.ID = id
	inquiry.FechaConsulta = time.Now().UTC()
	inquiry.Leida = false

	if _, err := s.db.Collection(inquiriesCollection).InsertOne(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to insert inquiry %d: %w", inquiry.ID, err)
	}
	return inquiry, nil
}

// ListInquiries returns every stored inquiry, newest first.
func (s *inquiryService) ListInquiries(ctx context.Context) ([]models.ContactInquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "fecha_consulta", Value: -1}})
	cursor, err := s.db.Collection(inquiriesCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	results := []models.ContactInquiry{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding inquiries: %w", err)
	}
	return results, nil
}

// MarkInquiryRead sets the read flag on an inquiry.
func (s *inquiryService) MarkInquiryRead(ctx context.Context, id int, leida bool) error {
	result, err := s.db.Collection(inquiriesCollection).UpdateOne(
		ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"leida": leida}},
	)
	if err != nil {
		return fmt.Errorf("failed to update inquiry %d: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
