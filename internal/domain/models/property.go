package models

// Property is a residential community that acts as a booking entry point and
// manifest grouping key. Slug is the unique URL key ("greenacres").
type Property struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	ContactPhone string `json:"contactPhone,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	MeetingPoint string `json:"meetingPoint"`
}

// PropertySpec carries admin-supplied fields for property creation.
type PropertySpec struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
	MeetingPoint string `json:"meetingPoint"`
}

// PropertyTrip links a trip to a property it is bookable from.
// The (propertyId, tripId) pair is unique.
type PropertyTrip struct {
	ID         int64 `json:"id"`
	PropertyID int64 `json:"propertyId"`
	TripID     int64 `json:"tripId"`
}
