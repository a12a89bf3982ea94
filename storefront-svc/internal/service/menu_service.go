package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restrofi/logger"
	"restrofi/storefront-svc/internal/apperr"
	"restrofi/storefront-svc/internal/domain"
	"restrofi/storefront-svc/internal/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuServiceInterface interface {
	Catalog(ctx context.Context, restaurantID string) (*menu.Catalog, error)
	CreateItem(ctx context.Context, entry *domain.MenuEntry) error
	UpdateItem(ctx context.Context, entry *domain.MenuEntry) error
	DeleteItem(ctx context.Context, restaurantID, id string) error
	ScanImage(ctx context.Context, restaurantID string, image []byte, mimeType string) ([]domain.MenuEntry, error)
	ImportItems(ctx context.Context, restaurantID string, entries []domain.MenuEntry, replace bool) ([]domain.MenuEntry, error)
}

// MaxImportItems caps one bulk import.
const MaxImportItems = 200

// MenuService loads catalogs through the cache and keeps it coherent with
// staff edits.
type MenuService struct {
	repository  MenuRepository
	cache       MenuCache
	scanner     MenuScanner
	scanTimeout time.Duration
	log         *logger.Logger
}

var _ MenuServiceInterface = (*MenuService)(nil)

func NewMenuService(repository MenuRepository, cache MenuCache, scanner MenuScanner, scanTimeout time.Duration, log *logger.Logger) *MenuService {
	return &MenuService{repository: repository, cache: cache, scanner: scanner, scanTimeout: scanTimeout, log: log}
}

func (s *MenuService) Catalog(ctx context.Context, restaurantID string) (*menu.Catalog, error) {
	if s.cache != nil {
		entries, ok, err := s.cache.GetMenu(ctx, restaurantID)
		if err != nil {
			s.log.Warn(ctx, "menu cache read failed", err)
		}
		if ok {
			return menu.NewCatalog(restaurantID, entries), nil
		}
	}

	entries, err := s.repository.ListMenuItems(ctx, restaurantID)
	if err != nil {
		return nil, externalError(err, "load menu")
	}
	if s.cache != nil {
		if err := s.cache.SetMenu(ctx, restaurantID, entries); err != nil {
			s.log.Warn(ctx, "menu cache write failed", err)
		}
	}
	return menu.NewCatalog(restaurantID, entries), nil
}

func (s *MenuService) CreateItem(ctx context.Context, entry *domain.MenuEntry) error {
	if err := validateEntry(entry); err != nil {
		return err
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if err := s.repository.CreateMenuItem(ctx, entry); err != nil {
		return externalError(err, "create menu item")
	}
	s.invalidate(ctx, entry.RestaurantID)
	return nil
}

func (s *MenuService) UpdateItem(ctx context.Context, entry *domain.MenuEntry) error {
	if err := validateEntry(entry); err != nil {
		return err
	}
	if err := s.repository.UpdateMenuItem(ctx, entry); err != nil {
		return lookupError(err, "menu item")
	}
	s.invalidate(ctx, entry.RestaurantID)
	return nil
}

func (s *MenuService) DeleteItem(ctx context.Context, restaurantID, id string) error {
	rows, err := s.repository.DeleteMenuItem(ctx, restaurantID, id)
	if err != nil {
		return externalError(err, "delete menu item")
	}
	if rows == 0 {
		return apperr.New(apperr.CodeNotFound, "menu item not found")
	}
	s.invalidate(ctx, restaurantID)
	return nil
}

// ScanImage extracts draft entries from a menu photo. Nothing is stored;
// staff review the drafts and send them back through ImportItems.
func (s *MenuService) ScanImage(ctx context.Context, restaurantID string, image []byte, mimeType string) ([]domain.MenuEntry, error) {
	if s.scanner == nil {
		return nil, apperr.New(apperr.CodeDependency, "menu scanning is not configured")
	}
	if len(image) == 0 {
		return nil, apperr.New(apperr.CodeValidation, "image is empty")
	}
	if s.scanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.scanTimeout)
		defer cancel()
	}

	drafts, err := s.scanner.ScanMenu(ctx, image, mimeType)
	if err != nil {
		return nil, externalError(err, "scan menu")
	}

	out := make([]domain.MenuEntry, 0, len(drafts))
	for _, d := range drafts {
		d.ID = ""
		d.RestaurantID = restaurantID
		if d.Category == "" {
			d.Category = "main"
		}
		if d.DietaryTags == nil {
			d.DietaryTags = []string{}
		}
		if len(entryProblems(&d)) > 0 {
			continue
		}
		out = append(out, d)
	}
	s.log.Info(s.log.WithField(ctx, "items", len(out)), "menu image scanned")
	return out, nil
}

// ImportItems stores a batch of entries in one transaction. With replace set
// the restaurant's existing menu is dropped first.
func (s *MenuService) ImportItems(ctx context.Context, restaurantID string, entries []domain.MenuEntry, replace bool) ([]domain.MenuEntry, error) {
	if len(entries) == 0 {
		return nil, apperr.New(apperr.CodeValidation, "no menu items to import")
	}
	if len(entries) > MaxImportItems {
		return nil, apperr.New(apperr.CodeValidation, fmt.Sprintf("at most %d items per import", MaxImportItems))
	}

	details := map[string]string{}
	for i := range entries {
		for field, problem := range entryProblems(&entries[i]) {
			details[fmt.Sprintf("items.%d.%s", i, field)] = problem
		}
	}
	if len(details) > 0 {
		return nil, apperr.New(apperr.CodeValidation, "invalid menu items").WithDetails(details)
	}

	for i := range entries {
		entries[i].RestaurantID = restaurantID
		if entries[i].ID == "" {
			entries[i].ID = uuid.NewString()
		}
	}
	if err := s.repository.ImportMenuItems(ctx, restaurantID, entries, replace); err != nil {
		return nil, externalError(err, "import menu items")
	}
	s.invalidate(ctx, restaurantID)
	return entries, nil
}

func (s *MenuService) invalidate(ctx context.Context, restaurantID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateMenu(ctx, restaurantID); err != nil {
		s.log.Warn(ctx, "menu cache invalidation failed", err)
	}
}

func validateEntry(entry *domain.MenuEntry) error {
	if details := entryProblems(entry); len(details) > 0 {
		return apperr.New(apperr.CodeValidation, "invalid menu item").WithDetails(details)
	}
	return nil
}

func entryProblems(entry *domain.MenuEntry) map[string]string {
	details := map[string]string{}
	if strings.TrimSpace(entry.Name) == "" {
		details["name"] = "is required"
	}
	if strings.TrimSpace(entry.Category) == "" {
		details["category"] = "is required"
	}
	if entry.Price.LessThan(decimal.Zero) {
		details["price"] = "must not be negative"
	}
	return details
}
