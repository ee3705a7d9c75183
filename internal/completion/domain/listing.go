// Package domain implements the listing field completion engine: a fixed
// rule table evaluated against a typed listing view, producing per-bucket
// checklists and the portal publish gate.
package domain

import "time"

// Listing is the flattened listing view the completion rules read. Every
// optional column is a pointer so absence and zero stay distinguishable.
// ImageCount is derived from listing_images by the caller, it is not a
// listing column.
type Listing struct {
	// Mandatory core.
	Price        *int64
	ListingType  *string
	PropertyType *string
	SquareMeter  *int
	Bedrooms     *int
	Bathrooms    *int
	Street       *string
	City         *string
	Province     *string
	PostalCode   *string
	Description  *string
	ImageCount   int

	// Details.
	BuiltSquareMeter  *int
	UsableSquareMeter *int
	PlotSquareMeter   *int
	YearBuilt         *int
	Floor             *string
	TotalFloors       *int
	Orientation       *string
	ConservationState *string
	EnergyCertificate *string
	EnergyConsumption *float64
	EnergyEmissions   *float64

	// Layout.
	Toilets        *int
	LivingRooms    *int
	Kitchens       *int
	Balconies      *int
	TerraceSquareM *int
	GardenSquareM  *int
	ParkingSpaces  *int
	StorageRooms   *int

	// Amenities.
	Elevator         *bool
	AirConditioning  *bool
	Heating          *bool
	BuiltInWardrobes *bool
	Furnished        *bool
	EquippedKitchen  *bool
	Terrace          *bool
	Balcony          *bool
	Garden           *bool
	SwimmingPool     *bool
	Garage           *bool
	StorageRoom      *bool
	SecurityDoor     *bool
	Alarm            *bool
	VideoIntercom    *bool
	Concierge        *bool
	Gym              *bool
	PaddleCourt      *bool
	Playground       *bool
	CommunityPool    *bool
	GreenAreas       *bool
	SeaView          *bool
	MountainView     *bool
	ExteriorFacing   *bool
	Accessible       *bool
	PetsAllowed      *bool
	SolarPanels      *bool
	DoubleGlazing    *bool
	Domotics         *bool
	Fireplace        *bool
	LaundryRoom      *bool
	DressingRoom     *bool
	HomeOffice       *bool
	GuestToilet      *bool

	// Location.
	Neighborhood *string
	Latitude     *float64
	Longitude    *float64
	NearMetro    *bool
	NearBus      *bool
	NearSchools  *bool
	NearShops    *bool
	NearHospital *bool
	NearPark     *bool

	// Economics.
	CommunityFees *int64
	IBIAnnual     *int64
	Deposit       *int64
	AvailableFrom *time.Time

	// Media.
	Title              *string
	DescriptionEnglish *string
	VideoURL           *string
	VirtualTourURL     *string
	FloorPlanURL       *string

	// Legal.
	CadastralReference   *string
	OccupancyCertificate *bool
	HabitabilityCert     *bool
	TouristLicense       *bool
	KeysAvailable        *bool
	OwnershipVerified    *bool
}
