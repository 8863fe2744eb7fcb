package repository

import (
	"time"

	"github.com/shelfwise/retail-api/internal/domain"
)

// Seed loads the bootstrap dataset so the store is never queried while empty.
// The data is volatile: every process start rebuilds exactly this baseline.
func (s *Store) Seed() error {
	products := []domain.Product{
		{Name: "Premium Cotton T-shirt (Black)", SKU: "TCT-BLK-M", Description: "High-quality cotton t-shirt in black", Price: 24.99, Category: "Apparel"},
		{Name: "Premium Cotton T-shirt (White)", SKU: "TCT-WHT-L", Description: "High-quality cotton t-shirt in white", Price: 24.99, Category: "Apparel"},
		{Name: "Designer Jeans (Slim Fit)", SKU: "DJN-SLM-32", Description: "Slim fit designer jeans", Price: 79.99, Category: "Apparel"},
		{Name: "Summer Dress (Floral)", SKU: "SDR-FLR-S", Description: "Floral summer dress", Price: 49.99, Category: "Apparel"},
		{Name: "Winter Jacket (Insulated)", SKU: "WJK-INS-L", Description: "Insulated winter jacket", Price: 129.99, Category: "Outerwear"},
		{Name: "Winter Accessories Bundle", SKU: "WAB-001", Description: "Bundle of winter accessories", Price: 45.99, Category: "Accessories"},
	}
	for _, p := range products {
		if _, err := s.Products.Create(p); err != nil {
			return err
		}
	}

	s.Locations.Create(domain.Location{Name: "Main Warehouse", Type: domain.LocationTypeWarehouse, Address: "123 Main St, Warehouse District"})
	s.Locations.Create(domain.Location{Name: "Store #103", Type: domain.LocationTypeStore, Address: "456 Market St, Downtown"})
	s.Locations.Create(domain.Location{Name: "Store #105", Type: domain.LocationTypeStore, Address: "789 Commerce Ave, Mall Complex"})

	inventory := []domain.Inventory{
		{ProductID: 1, LocationID: 1, Quantity: 1245, MinStockLevel: 100, MaxStockLevel: 2000},
		{ProductID: 2, LocationID: 2, Quantity: 56, MinStockLevel: 100, MaxStockLevel: 500},
		{ProductID: 3, LocationID: 1, Quantity: 843, MinStockLevel: 200, MaxStockLevel: 600},
		{ProductID: 4, LocationID: 3, Quantity: 12, MinStockLevel: 50, MaxStockLevel: 300},
		{ProductID: 5, LocationID: 1, Quantity: 378, MinStockLevel: 100, MaxStockLevel: 500},
		{ProductID: 6, LocationID: 1, Quantity: 523, MinStockLevel: 100, MaxStockLevel: 400},
	}
	for _, inv := range inventory {
		s.Inventory.Create(inv)
	}

	s.Suppliers.Create(domain.Supplier{Name: "GlobalSupply Inc.", ContactPerson: "John Brown", Email: "john@globalsupply.com", Phone: "+1-555-123-4567"})
	s.Suppliers.Create(domain.Supplier{Name: "FashionFabrics Ltd.", ContactPerson: "Sarah Lee", Email: "sarah@fashionfabrics.com", Phone: "+1-555-987-6543"})
	s.Suppliers.Create(domain.Supplier{Name: "TextileTech", ContactPerson: "Mike Chen", Email: "mike@textiletech.com", Phone: "+1-555-456-7890"})

	inWeek := time.Now().Add(7 * 24 * time.Hour)
	inTwoWeeks := time.Now().Add(14 * 24 * time.Hour)

	order1 := s.Orders.Create(domain.Order{SupplierID: 1, LocationID: 1, Status: domain.OrderStatusDelivered, DeliveryDate: &inWeek})
	s.OrderItems.Create(domain.OrderItem{OrderID: order1.ID, ProductID: 1, Quantity: 500, UnitPrice: 15.99})
	s.OrderItems.Create(domain.OrderItem{OrderID: order1.ID, ProductID: 2, Quantity: 300, UnitPrice: 15.99})

	order2 := s.Orders.Create(domain.Order{SupplierID: 2, LocationID: 2, Status: domain.OrderStatusPending, DeliveryDate: &inTwoWeeks})
	s.OrderItems.Create(domain.OrderItem{OrderID: order2.ID, ProductID: 4, Quantity: 100, UnitPrice: 29.99})

	tomorrow := time.Now().Add(24 * time.Hour)
	nextWeek := time.Now().Add(7 * 24 * time.Hour)

	s.Forecasts.Create(domain.Forecast{ProductID: 1, LocationID: 1, PredictedDemand: 350, Confidence: 0.92, StartDate: tomorrow, EndDate: nextWeek})
	s.Forecasts.Create(domain.Forecast{ProductID: 2, LocationID: 2, PredictedDemand: 120, Confidence: 0.85, StartDate: tomorrow, EndDate: nextWeek})

	s.PriceOptimizations.Create(domain.PriceOptimization{ProductID: 3, CurrentPrice: 79.99, SuggestedPrice: 67.99, PercentageChange: -15, Reason: domain.PriceReasonOverstock, Status: domain.PriceStatusPending})
	s.PriceOptimizations.Create(domain.PriceOptimization{ProductID: 6, CurrentPrice: 45.99, SuggestedPrice: 39.99, PercentageChange: -13, Reason: domain.PriceReasonOverstock, Status: domain.PriceStatusPending})
	s.PriceOptimizations.Create(domain.PriceOptimization{ProductID: 2, CurrentPrice: 24.99, SuggestedPrice: 29.99, PercentageChange: 20, Reason: domain.PriceReasonLowStock, Status: domain.PriceStatusPending})

	restock := s.Communications.Create(domain.AgentCommunication{Topic: "Restock Coordination"})
	s.Communications.Create(domain.AgentCommunication{Topic: "Supplier Negotiation"})
	s.Communications.Create(domain.AgentCommunication{Topic: "Stockout Prevention"})

	messages := []domain.Message{
		{CommunicationID: restock.ID, AgentType: "forecast", Content: "Latest demand analysis shows we need to increase Summer Collection inventory by 15% to meet projected demand over the next 30 days."},
		{CommunicationID: restock.ID, AgentType: "inventory", Content: "Current Summer Collection stock is at 65% of optimal level. Do we have supplier capacity to fulfill the 15% increase?"},
		{CommunicationID: restock.ID, AgentType: "supplier", Content: "I've checked with our primary supplier GlobalSupply Inc. They can accommodate a 20% increase with standard lead time of 14 days."},
		{CommunicationID: restock.ID, AgentType: "pricing", Content: "Based on current demand elasticity, we could increase prices by 7-10% during peak season without significant impact on sales volume."},
	}
	for _, m := range messages {
		s.Messages.Create(m)
		s.Communications.Touch(m.CommunicationID)
	}

	activities := []domain.AgentActivity{
		{AgentType: "forecast", Title: "Forecast Agent", Description: "Updated demand prediction for 'Summer Collection' products."},
		{AgentType: "inventory", Title: "Inventory Agent", Description: "Detected potential stockout risk for 'Organic Cotton T-shirts'."},
		{AgentType: "pricing", Title: "Pricing Agent", Description: "Suggested 15% discount for overstock items in 'Winter Accessories'."},
		{AgentType: "supplier", Title: "Supplier Agent", Description: "Initiated PO #45892 with 'GlobalSupply Inc.' for 2,500 units."},
	}
	for _, a := range activities {
		s.Activities.Create(a)
	}

	_, err := s.Users.Create(domain.User{Username: "admin", Password: "password"})
	return err
}
