// Package repository loads the flattened listing view the completion
// engine evaluates, including the derived image count.
package repository

import (
	"context"
	"errors"
	"fmt"

	"inmo_crm_backend/internal/completion/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when the listing does not exist in the tenant.
var ErrNotFound = errors.New("listing not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListingView returns the tenant's listing flattened for rule evaluation.
// The property address columns are folded in and image_count is counted
// from listing_images, so the engine sees one record.
func (r *Repository) ListingView(ctx context.Context, tenantID, listingID uuid.UUID) (domain.Listing, error) {
	query := `
		SELECT l.price, l.listing_type, l.property_type,
			l.square_meter, l.bedrooms, l.bathrooms,
			pr.street, pr.city, pr.province, pr.postal_code,
			l.description,
			(SELECT COUNT(*) FROM listing_images li WHERE li.listing_id = l.id),
			l.built_square_meter, l.usable_square_meter, l.plot_square_meter,
			l.year_built, l.floor, l.total_floors, l.orientation,
			l.conservation_state, l.energy_certificate, l.energy_consumption, l.energy_emissions,
			l.toilets, l.living_rooms, l.kitchens, l.balconies,
			l.terrace_square_meter, l.garden_square_meter, l.parking_spaces, l.storage_rooms,
			l.elevator, l.air_conditioning, l.heating, l.built_in_wardrobes,
			l.furnished, l.equipped_kitchen, l.terrace, l.balcony,
			l.garden, l.swimming_pool, l.garage, l.storage_room,
			l.security_door, l.alarm, l.video_intercom, l.concierge,
			l.gym, l.paddle_court, l.playground, l.community_pool,
			l.green_areas, l.sea_view, l.mountain_view, l.exterior_facing,
			l.accessible, l.pets_allowed, l.solar_panels, l.double_glazing,
			l.domotics, l.fireplace, l.laundry_room, l.dressing_room,
			l.home_office, l.guest_toilet,
			pr.neighborhood, pr.latitude, pr.longitude,
			l.near_metro, l.near_bus, l.near_schools, l.near_shops,
			l.near_hospital, l.near_park,
			l.community_fees, l.ibi_annual, l.deposit, l.available_from,
			l.title, l.description_english, l.video_url, l.virtual_tour_url, l.floor_plan_url,
			pr.cadastral_reference, l.occupancy_certificate, l.habitability_certificate,
			l.tourist_license, l.keys_available, l.ownership_verified
		FROM listings l
		JOIN properties pr ON pr.id = l.property_id
		WHERE l.id = $1 AND l.organization_id = $2`

	var v domain.Listing
	err := r.pool.QueryRow(ctx, query, listingID, tenantID).Scan(
		&v.Price, &v.ListingType, &v.PropertyType,
		&v.SquareMeter, &v.Bedrooms, &v.Bathrooms,
		&v.Street, &v.City, &v.Province, &v.PostalCode,
		&v.Description,
		&v.ImageCount,
		&v.BuiltSquareMeter, &v.UsableSquareMeter, &v.PlotSquareMeter,
		&v.YearBuilt, &v.Floor, &v.TotalFloors, &v.Orientation,
		&v.ConservationState, &v.EnergyCertificate, &v.EnergyConsumption, &v.EnergyEmissions,
		&v.Toilets, &v.LivingRooms, &v.Kitchens, &v.Balconies,
		&v.TerraceSquareM, &v.GardenSquareM, &v.ParkingSpaces, &v.StorageRooms,
		&v.Elevator, &v.AirConditioning, &v.Heating, &v.BuiltInWardrobes,
		&v.Furnished, &v.EquippedKitchen, &v.Terrace, &v.Balcony,
		&v.Garden, &v.SwimmingPool, &v.Garage, &v.StorageRoom,
		&v.SecurityDoor, &v.Alarm, &v.VideoIntercom, &v.Concierge,
		&v.Gym, &v.PaddleCourt, &v.Playground, &v.CommunityPool,
		&v.GreenAreas, &v.SeaView, &v.MountainView, &v.ExteriorFacing,
		&v.Accessible, &v.PetsAllowed, &v.SolarPanels, &v.DoubleGlazing,
		&v.Domotics, &v.Fireplace, &v.LaundryRoom, &v.DressingRoom,
		&v.HomeOffice, &v.GuestToilet,
		&v.Neighborhood, &v.Latitude, &v.Longitude,
		&v.NearMetro, &v.NearBus, &v.NearSchools, &v.NearShops,
		&v.NearHospital, &v.NearPark,
		&v.CommunityFees, &v.IBIAnnual, &v.Deposit, &v.AvailableFrom,
		&v.Title, &v.DescriptionEnglish, &v.VideoURL, &v.VirtualTourURL, &v.FloorPlanURL,
		&v.CadastralReference, &v.OccupancyCertificate, &v.HabitabilityCert,
		&v.TouristLicense, &v.KeysAvailable, &v.OwnershipVerified,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Listing{}, ErrNotFound
	}
	if err != nil {
		return domain.Listing{}, fmt.Errorf("listing view: %w", err)
	}

	return v, nil
}
