package domain

// Catalog records are read-only to this system. They are stored as plain
// documents with a string id field, seeded out of band.

type FlightEndpoint struct {
	City    string `bson:"city" json:"city"`
	Airport string `bson:"airport" json:"airport"`
	Time    string `bson:"time" json:"time"`
}

type Flight struct {
	ID           string         `bson:"id" json:"id"`
	Airline      string         `bson:"airline" json:"airline"`
	FlightNumber string         `bson:"flightNumber" json:"flightNumber"`
	Departure    FlightEndpoint `bson:"departure" json:"departure"`
	Arrival      FlightEndpoint `bson:"arrival" json:"arrival"`
	Date         string         `bson:"date,omitempty" json:"date,omitempty"`
	Price        float64        `bson:"price" json:"price"`
	Duration     string         `bson:"duration" json:"duration"`
	Stops        int            `bson:"stops" json:"stops"`
}

type Hotel struct {
	ID             string   `bson:"id" json:"id"`
	Name           string   `bson:"name" json:"name"`
	Location       string   `bson:"location" json:"location"`
	Rating         float64  `bson:"rating" json:"rating"`
	Price          float64  `bson:"price" json:"price"`
	Amenities      []string `bson:"amenities" json:"amenities"`
	Images         []string `bson:"images" json:"images"`
	Description    string   `bson:"description" json:"description"`
	AvailableRooms int      `bson:"availableRooms" json:"availableRooms"`
}

type Car struct {
	ID           string   `bson:"id" json:"id"`
	Name         string   `bson:"name" json:"name"`
	Type         string   `bson:"type" json:"type"`
	Brand        string   `bson:"brand" json:"brand"`
	Price        float64  `bson:"price" json:"price"`
	Image        string   `bson:"image" json:"image"`
	Features     []string `bson:"features" json:"features"`
	Available    bool     `bson:"available" json:"available"`
	Transmission string   `bson:"transmission" json:"transmission"`
	Seats        int      `bson:"seats" json:"seats"`
	Luggage      int      `bson:"luggage" json:"luggage"`
	Location     string   `bson:"location,omitempty" json:"location,omitempty"`
}

type GuideSection struct {
	Title   string `bson:"title" json:"title"`
	Content string `bson:"content" json:"content"`
}

type GuideContent struct {
	Sections []GuideSection `bson:"sections" json:"sections"`
}

type Guide struct {
	ID          string       `bson:"id" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Destination string       `bson:"destination" json:"destination"`
	Description string       `bson:"description" json:"description"`
	Image       string       `bson:"image" json:"image"`
	Author      string       `bson:"author" json:"author"`
	Date        string       `bson:"date" json:"date"`
	Categories  []string     `bson:"categories" json:"categories"`
	Content     GuideContent `bson:"content" json:"content"`
}

// Search queries. Every field is required unless noted; validation runs
// before any store access.

type FlightQuery struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Date       string `json:"date"`
	Passengers int    `json:"passengers"`
}

func (q FlightQuery) Validate() error {
	if q.From == "" || q.To == "" || q.Date == "" || q.Passengers == 0 {
		return Invalid("Missing required fields")
	}
	return nil
}

type CarQuery struct {
	Location    string `json:"location"`
	PickUpDate  string `json:"pickUpDate"`
	DropOffDate string `json:"dropOffDate"`
	PickUpTime  string `json:"pickUpTime"`
	DropOffTime string `json:"dropOffTime"`
}

func (q CarQuery) Validate() error {
	if q.Location == "" || q.PickUpDate == "" || q.DropOffDate == "" || q.PickUpTime == "" || q.DropOffTime == "" {
		return Invalid("Missing required fields")
	}
	return nil
}

type HotelQuery struct {
	Location string `json:"location"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
	Rooms    int    `json:"rooms"`
}

func (q HotelQuery) Validate() error {
	if q.Location == "" || q.CheckIn == "" || q.CheckOut == "" || q.Guests == 0 || q.Rooms == 0 {
		return Invalid("Missing required fields")
	}
	return nil
}

type GuideQuery struct {
	Destination string `json:"destination"`
	Category    string `json:"category,omitempty"` // optional, narrows results
}

func (q GuideQuery) Validate() error {
	if q.Destination == "" {
		return Invalid("Missing required fields")
	}
	return nil
}
