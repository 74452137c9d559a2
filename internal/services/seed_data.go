package service

import (
	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/shopspring/decimal"
)

var sampleCategories = []models.CreateCategoryRequest{
	{Name: "Surgical Instruments", Description: "Professional surgical instruments for medical procedures", Icon: "🔪", SortOrder: 1},
	{Name: "Diagnostic Equipment", Description: "Advanced diagnostic tools for medical examinations", Icon: "🔍", SortOrder: 2},
	{Name: "Patient Monitoring", Description: "Equipment for monitoring patient vital signs", Icon: "📊", SortOrder: 3},
	{Name: "Emergency Equipment", Description: "Critical equipment for emergency medical situations", Icon: "🚨", SortOrder: 4},
	{Name: "Laboratory Equipment", Description: "Tools and equipment for medical laboratory work", Icon: "🧪", SortOrder: 5},
}

// sampleEquipment is keyed by the name of the sample category it belongs to.
var sampleEquipment = map[string]models.Equipment{
	"Surgical Instruments": {
		Name:           "Surgical Scalpel Set",
		Description:    "Professional surgical scalpel set with multiple blade sizes",
		Image:          "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=800&h=600&fit=crop",
		Price:          decimal.NewNullDecimal(decimal.RequireFromString("299.99")),
		Availability:   models.AvailabilityInStock,
		Specifications: []string{"Stainless steel blades", "Ergonomic handles", "Sterilizable"},
		Features:       []string{"Professional grade", "Multiple blade sizes", "Easy to use"},
		Brand:          "MediPro",
		Model:          "SS-2000",
		Condition:      models.ConditionNew,
		Warranty:       "2 years",
		StockQuantity:  50,
		MinStockLevel:  10,
	},
	"Diagnostic Equipment": {
		Name:           "Digital Stethoscope",
		Description:    "Advanced digital stethoscope with noise reduction",
		Image:          "https://images.unsplash.com/photo-1576091160399-112ba8d25d1f?w=800&h=600&fit=crop",
		Price:          decimal.NewNullDecimal(decimal.RequireFromString("199.99")),
		Availability:   models.AvailabilityInStock,
		Specifications: []string{"Digital amplification", "Noise reduction", "Bluetooth connectivity"},
		Features:       []string{"Clear sound", "Recording capability", "Mobile app integration"},
		Brand:          "CardioTech",
		Model:          "DS-500",
		Condition:      models.ConditionNew,
		Warranty:       "3 years",
		StockQuantity:  25,
		MinStockLevel:  5,
	},
}
