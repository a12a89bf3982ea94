package tests

import (
	"context"
	"time"

	"restrofi/logger"
	"restrofi/storefront-svc/internal/domain"
	"restrofi/storefront-svc/internal/menu"
	"restrofi/storefront-svc/internal/pin"
	"restrofi/storefront-svc/internal/session"

	"github.com/shopspring/decimal"
)

var testLog = logger.Nop()

func sampleMenu() []domain.MenuEntry {
	return []domain.MenuEntry{
		{ID: "m1", RestaurantID: "r1", Name: "Zaffrani Paneer Tikka", Description: "Smoked cottage cheese", Category: "starter", Price: decimal.NewFromInt(850), DietaryTags: []string{"V", "GF"}, InStock: true},
		{ID: "m2", RestaurantID: "r1", Name: "Dal Makhani", Description: "Black lentils", Category: "main", Price: decimal.NewFromInt(700), DietaryTags: []string{"V"}, InStock: true},
		{ID: "m3", RestaurantID: "r1", Name: "Mango Lassi", Description: "Yoghurt and mango", Category: "drinks", Price: decimal.NewFromInt(250), InStock: false},
	}
}

type staticVerifier string

func (v staticVerifier) VerifyPin(_ context.Context, code string) (bool, error) {
	return code == string(v), nil
}

func newSession(id string) *session.Session {
	return session.New(session.Params{
		ID:           id,
		RestaurantID: "r1",
		TableID:      "t7",
		TableNumber:  7,
		Catalog:      menu.NewCatalog("r1", sampleMenu()),
		Gate:         pin.NewGate(pin.Options{Verifier: staticVerifier("1234")}),
		Greeting:     "Hello!",
		Now:          time.Now(),
	})
}
