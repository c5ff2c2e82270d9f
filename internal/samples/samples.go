// Package samples supplies the fixed demo records returned when a search
// matches nothing. The provider is injected into the search services so
// production can swap in Disabled and surface real empty results.
package samples

import "github.com/tripnest/tripnest-api/internal/domain"

type Provider interface {
	Flights(from, to string) []domain.Flight
	Cars() []domain.Car
	Hotels() []domain.Hotel
	Guides() []domain.Guide
	Guide() *domain.Guide
}

// Demo returns the literal sample data shipped with the product demo.
type Demo struct{}

func NewDemo() Demo { return Demo{} }

func (Demo) Flights(from, to string) []domain.Flight {
	return []domain.Flight{
		{
			ID:           "1",
			Airline:      "TripNest Airlines",
			FlightNumber: "TN123",
			Departure:    domain.FlightEndpoint{City: from, Airport: "TNA", Time: "10:00 AM"},
			Arrival:      domain.FlightEndpoint{City: to, Airport: "TNB", Time: "12:00 PM"},
			Price:        299,
			Duration:     "2h",
			Stops:        0,
		},
		{
			ID:           "2",
			Airline:      "TripNest Airlines",
			FlightNumber: "TN456",
			Departure:    domain.FlightEndpoint{City: from, Airport: "TNA", Time: "2:00 PM"},
			Arrival:      domain.FlightEndpoint{City: to, Airport: "TNB", Time: "5:00 PM"},
			Price:        199,
			Duration:     "3h",
			Stops:        1,
		},
	}
}

func (Demo) Cars() []domain.Car {
	return []domain.Car{
		{
			ID:           "1",
			Name:         "Toyota Camry",
			Type:         "Sedan",
			Brand:        "Toyota",
			Price:        49,
			Image:        "https://images.unsplash.com/photo-1550355291-bbee04a92027?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Features:     []string{"Bluetooth", "GPS", "Backup Camera", "Cruise Control"},
			Available:    true,
			Transmission: "Automatic",
			Seats:        5,
			Luggage:      2,
		},
		{
			ID:           "2",
			Name:         "Honda CR-V",
			Type:         "SUV",
			Brand:        "Honda",
			Price:        69,
			Image:        "https://images.unsplash.com/photo-1603584173870-7f23fdae1b7a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Features:     []string{"Bluetooth", "GPS", "Backup Camera", "Cruise Control", "Sunroof"},
			Available:    true,
			Transmission: "Automatic",
			Seats:        5,
			Luggage:      3,
		},
		{
			ID:           "3",
			Name:         "BMW 3 Series",
			Type:         "Luxury",
			Brand:        "BMW",
			Price:        89,
			Image:        "https://images.unsplash.com/photo-1555215695-3004980ad54e?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Features:     []string{"Bluetooth", "GPS", "Backup Camera", "Cruise Control", "Leather Seats", "Premium Audio"},
			Available:    false,
			Transmission: "Automatic",
			Seats:        5,
			Luggage:      2,
		},
	}
}

func (Demo) Hotels() []domain.Hotel {
	return []domain.Hotel{
		{
			ID:       "1",
			Name:     "Grand Plaza Hotel",
			Location: "Paris, France",
			Rating:   4.7,
			Price:    189,
			Amenities: []string{
				"Free WiFi", "Pool", "Spa", "Restaurant", "Fitness Center",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1566073771259-6a8506099945?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Description:    "Elegant hotel in the heart of the city with stunning views and world-class amenities.",
			AvailableRooms: 12,
		},
		{
			ID:       "2",
			Name:     "Seaside Resort & Spa",
			Location: "Barcelona, Spain",
			Rating:   4.5,
			Price:    149,
			Amenities: []string{
				"Free WiFi", "Beach Access", "Pool", "Bar", "Room Service",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Description:    "Beachfront resort offering relaxation and comfort just steps from the Mediterranean.",
			AvailableRooms: 8,
		},
		{
			ID:       "3",
			Name:     "City Center Inn",
			Location: "London, UK",
			Rating:   4.2,
			Price:    99,
			Amenities: []string{
				"Free WiFi", "Breakfast Included", "24h Front Desk",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			},
			Description:    "Comfortable rooms at an unbeatable price, minutes from the main attractions.",
			AvailableRooms: 20,
		},
	}
}

func (Demo) Guides() []domain.Guide {
	return []domain.Guide{
		{
			ID:          "1",
			Title:       "Exploring the Hidden Gems of Paris",
			Destination: "Paris, France",
			Description: "Discover the lesser-known attractions and local favorites in the City of Light.",
			Image:       "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Author:      "Sarah Johnson",
			Date:        "March 15, 2024",
			Categories:  []string{"culture", "food", "history"},
			Content: domain.GuideContent{Sections: []domain.GuideSection{
				{
					Title:   "Introduction",
					Content: "Paris, the capital of France, is known for its iconic landmarks and rich cultural heritage...",
				},
				{
					Title:   "Hidden Gems",
					Content: "While the Eiffel Tower and Louvre are must-visit attractions, there are many lesser-known spots...",
				},
			}},
		},
		{
			ID:          "2",
			Title:       "Adventure Guide: Hiking in the Swiss Alps",
			Destination: "Swiss Alps",
			Description: "A comprehensive guide to hiking trails and outdoor activities in the Swiss Alps.",
			Image:       "https://images.unsplash.com/photo-1506906731076-74ed55d96f8b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Author:      "Michael Chen",
			Date:        "March 10, 2024",
			Categories:  []string{"adventure", "nature"},
			Content: domain.GuideContent{Sections: []domain.GuideSection{
				{
					Title:   "Getting Started",
					Content: "The Swiss Alps offer some of the most breathtaking hiking trails in Europe...",
				},
				{
					Title:   "Best Trails",
					Content: "From beginner-friendly paths to challenging mountain routes...",
				},
			}},
		},
	}
}

// Guide is the single detailed record served when a guide lookup misses.
func (Demo) Guide() *domain.Guide {
	return &domain.Guide{
		ID:          "1",
		Title:       "Exploring the Hidden Gems of Paris",
		Destination: "Paris, France",
		Description: "Discover the lesser-known attractions and local favorites in the City of Light.",
		Image:       "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Author:      "Sarah Johnson",
		Date:        "March 15, 2024",
		Categories:  []string{"culture", "food", "history"},
		Content: domain.GuideContent{Sections: []domain.GuideSection{
			{
				Title:   "Introduction",
				Content: "Paris, the capital of France, is known for its iconic landmarks and rich cultural heritage. While millions of tourists flock to the Eiffel Tower and Louvre Museum each year, there are countless hidden gems waiting to be discovered by the curious traveler.",
			},
			{
				Title:   "Hidden Gems",
				Content: "While the Eiffel Tower and Louvre are must-visit attractions, there are many lesser-known spots that offer a more authentic Parisian experience. Here are some of our favorite hidden gems:\n\n1. Musée de la Chasse et de la Nature\n2. Passage des Panoramas\n3. Butte-aux-Cailles\n4. Musée des Arts et Métiers\n5. Parc des Buttes-Chaumont",
			},
			{
				Title:   "Local Food Scene",
				Content: "Paris is a paradise for food lovers, and while the city is famous for its Michelin-starred restaurants, some of the best culinary experiences can be found in local bistros and markets. Here are some recommendations:\n\n- Marché d'Aligre\n- Le Baratin\n- L'Arpège\n- Chez L'Ami Jean\n- Le Chateaubriand",
			},
		}},
	}
}

// Disabled turns the fallback off so empty search results stay empty.
type Disabled struct{}

func NewDisabled() Disabled { return Disabled{} }

func (Disabled) Flights(string, string) []domain.Flight { return nil }
func (Disabled) Cars() []domain.Car                     { return nil }
func (Disabled) Hotels() []domain.Hotel                 { return nil }
func (Disabled) Guides() []domain.Guide                 { return nil }
func (Disabled) Guide() *domain.Guide                   { return nil }
