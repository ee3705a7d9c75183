package domain

import "strings"

// Importance partitions the rule table into publish-blocking and
// quality-improving fields.
type Importance string

const (
	ImportanceMandatory Importance = "mandatory"
	ImportanceNth       Importance = "nth"
)

// Rule is one entry of the fixed completion table. Done reads the typed
// listing view directly; there is no field-name lookup at runtime.
type Rule struct {
	ID         string
	Label      string
	Importance Importance
	Category   string
	Done       func(Listing) bool
}

const (
	minDescriptionLength = 20
	minMandatoryImages   = 5
	minQualityImages     = 10
	minBuildYear         = 1800
)

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func minLen(s *string, n int) bool {
	return s != nil && len(strings.TrimSpace(*s)) >= n
}

func positiveInt(n *int) bool {
	return n != nil && *n > 0
}

func positiveInt64(n *int64) bool {
	return n != nil && *n > 0
}

func positiveFloat(n *float64) bool {
	return n != nil && *n > 0
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

// rules is the complete hand-curated table, evaluated in declaration
// order: 12 mandatory entries followed by 78 nth entries. Thresholds are
// fixed; changing one means changing the table.
var rules = []Rule{
	// Mandatory: the portal publish gate.
	{ID: "price", Label: "Precio", Importance: ImportanceMandatory, Category: "basic",
		Done: func(l Listing) bool { return positiveInt64(l.Price) }},
	{ID: "listing_type", Label: "Tipo de operación", Importance: ImportanceMandatory, Category: "basic",
		Done: func(l Listing) bool { return hasText(l.ListingType) }},
	{ID: "property_type", Label: "Tipo de inmueble", Importance: ImportanceMandatory, Category: "basic",
		Done: func(l Listing) bool { return hasText(l.PropertyType) }},
	{ID: "square_meter", Label: "Superficie", Importance: ImportanceMandatory, Category: "basic",
		Done: func(l Listing) bool { return positiveInt(l.SquareMeter) }},
	{ID: "bedrooms", Label: "Dormitorios", Importance: ImportanceMandatory, Category: "basic",
		Done: func(l Listing) bool { return positiveInt(l.Bedrooms) }},
	{ID: "bathrooms", Label: "Baños", Importance: ImportanceMandatory, Category: "basic",
		Done: func(l Listing) bool { return positiveInt(l.Bathrooms) }},
	{ID: "street", Label: "Calle", Importance: ImportanceMandatory, Category: "location",
		Done: func(l Listing) bool { return hasText(l.Street) }},
	{ID: "city", Label: "Ciudad", Importance: ImportanceMandatory, Category: "location",
		Done: func(l Listing) bool { return hasText(l.City) }},
	{ID: "province", Label: "Provincia", Importance: ImportanceMandatory, Category: "location",
		Done: func(l Listing) bool { return hasText(l.Province) }},
	{ID: "postal_code", Label: "Código postal", Importance: ImportanceMandatory, Category: "location",
		Done: func(l Listing) bool { return hasText(l.PostalCode) }},
	{ID: "description", Label: "Descripción", Importance: ImportanceMandatory, Category: "description",
		Done: func(l Listing) bool { return minLen(l.Description, minDescriptionLength) }},
	{ID: "images", Label: "Fotos (mínimo 5)", Importance: ImportanceMandatory, Category: "media",
		Done: func(l Listing) bool { return l.ImageCount >= minMandatoryImages }},

	// Details.
	{ID: "built_square_meter", Label: "Superficie construida", Importance: ImportanceNth, Category: "details",
		Done: func(l Listing) bool { return positiveInt(l.BuiltSquareMeter) }},
	{ID: "usable_square_meter", Label: "Superficie útil", Importance: ImportanceNth, Category: "details",
		Done: func(l Listing) bool { return positiveInt(l.UsableSquareMeter) }},
	{ID: "plot_square_meter", Label: "Superficie de parcela", Importance: ImportanceNth, Category: "details",
		Done: func(l Listing) bool { return positiveInt(l.PlotSquareMeter) }},
	{ID: "year_built", Label: "Año de construcción", Importance: ImportanceNth, Category: "details",
		Done: func(l Listing) bool { return l.YearBuilt != nil && *l.YearBuilt > minBuildYear }},
	{ID: "floor", Label: "Planta", Importance: ImportanceNth, Category: "details",
		Done: func(l Listing) bool { return hasText(l.Floor) }},
	{ID: "total_floors", Label: "Plantas del edificio", Importance: ImportanceNth, Category: "details",
		Done: func(l Listing) bool { return positiveInt(l.TotalFloors) }},
	{ID: "orientation", Label: "Orientación", Importance: ImportanceNth, Category: "details",
		Done: func(l Listing) bool { return hasText(l.Orientation) }},
	{ID: "conservation_state", Label: "Estado de conservación", Importance: ImportanceNth, Category: "details",
		Done: func(l Listing) bool { return hasText(l.ConservationState) }},
	{ID: "energy_certificate", Label: "Certificado energético", Importance: ImportanceNth, Category: "details",
		Done: func(l Listing) bool { return hasText(l.EnergyCertificate) }},
	{ID: "energy_consumption", Label: "Consumo energético", Importance: ImportanceNth, Category: "details",
		Done: func(l Listing) bool { return positiveFloat(l.EnergyConsumption) }},
	{ID: "energy_emissions", Label: "Emisiones", Importance: ImportanceNth, Category: "details",
		Done: func(l Listing) bool { return positiveFloat(l.EnergyEmissions) }},

	// Layout.
	{ID: "toilets", Label: "Aseos", Importance: ImportanceNth, Category: "layout",
		Done: func(l Listing) bool { return positiveInt(l.Toilets) }},
	{ID: "living_rooms", Label: "Salones", Importance: ImportanceNth, Category: "layout",
		Done: func(l Listing) bool { return positiveInt(l.LivingRooms) }},
	{ID: "kitchens", Label: "Cocinas", Importance: ImportanceNth, Category: "layout",
		Done: func(l Listing) bool { return positiveInt(l.Kitchens) }},
	{ID: "balconies", Label: "Balcones", Importance: ImportanceNth, Category: "layout",
		Done: func(l Listing) bool { return positiveInt(l.Balconies) }},
	{ID: "terrace_square_meter", Label: "Superficie de terraza", Importance: ImportanceNth, Category: "layout",
		Done: func(l Listing) bool { return positiveInt(l.TerraceSquareM) }},
	{ID: "garden_square_meter", Label: "Superficie de jardín", Importance: ImportanceNth, Category: "layout",
		Done: func(l Listing) bool { return positiveInt(l.GardenSquareM) }},
	{ID: "parking_spaces", Label: "Plazas de garaje", Importance: ImportanceNth, Category: "layout",
		Done: func(l Listing) bool { return positiveInt(l.ParkingSpaces) }},
	{ID: "storage_rooms", Label: "Trasteros", Importance: ImportanceNth, Category: "layout",
		Done: func(l Listing) bool { return positiveInt(l.StorageRooms) }},

	// Amenities: strict boolean-true checks.
	{ID: "elevator", Label: "Ascensor", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.Elevator) }},
	{ID: "air_conditioning", Label: "Aire acondicionado", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.AirConditioning) }},
	{ID: "heating", Label: "Calefacción", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.Heating) }},
	{ID: "built_in_wardrobes", Label: "Armarios empotrados", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.BuiltInWardrobes) }},
	{ID: "furnished", Label: "Amueblado", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.Furnished) }},
	{ID: "equipped_kitchen", Label: "Cocina equipada", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.EquippedKitchen) }},
	{ID: "terrace", Label: "Terraza", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.Terrace) }},
	{ID: "balcony", Label: "Balcón", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.Balcony) }},
	{ID: "garden", Label: "Jardín", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.Garden) }},
	{ID: "swimming_pool", Label: "Piscina", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.SwimmingPool) }},
	{ID: "garage", Label: "Garaje", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.Garage) }},
	{ID: "storage_room", Label: "Trastero", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.StorageRoom) }},
	{ID: "security_door", Label: "Puerta blindada", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.SecurityDoor) }},
	{ID: "alarm", Label: "Alarma", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.Alarm) }},
	{ID: "video_intercom", Label: "Videoportero", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.VideoIntercom) }},
	{ID: "concierge", Label: "Conserje", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.Concierge) }},
	{ID: "gym", Label: "Gimnasio", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.Gym) }},
	{ID: "paddle_court", Label: "Pista de pádel", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.PaddleCourt) }},
	{ID: "playground", Label: "Zona infantil", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.Playground) }},
	{ID: "community_pool", Label: "Piscina comunitaria", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.CommunityPool) }},
	{ID: "green_areas", Label: "Zonas verdes", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.GreenAreas) }},
	{ID: "sea_view", Label: "Vistas al mar", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.SeaView) }},
	{ID: "mountain_view", Label: "Vistas a la montaña", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.MountainView) }},
	{ID: "exterior_facing", Label: "Exterior", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.ExteriorFacing) }},
	{ID: "accessible", Label: "Accesible", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.Accessible) }},
	{ID: "pets_allowed", Label: "Se admiten mascotas", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.PetsAllowed) }},
	{ID: "solar_panels", Label: "Placas solares", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.SolarPanels) }},
	{ID: "double_glazing", Label: "Doble acristalamiento", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.DoubleGlazing) }},
	{ID: "domotics", Label: "Domótica", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.Domotics) }},
	{ID: "fireplace", Label: "Chimenea", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.Fireplace) }},
	{ID: "laundry_room", Label: "Lavadero", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.LaundryRoom) }},
	{ID: "dressing_room", Label: "Vestidor", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.DressingRoom) }},
	{ID: "home_office", Label: "Despacho", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.HomeOffice) }},
	{ID: "guest_toilet", Label: "Aseo de cortesía", Importance: ImportanceNth, Category: "amenities",
		Done: func(l Listing) bool { return isTrue(l.GuestToilet) }},

	// Location.
	{ID: "neighborhood", Label: "Barrio", Importance: ImportanceNth, Category: "location",
		Done: func(l Listing) bool { return hasText(l.Neighborhood) }},
	{ID: "latitude", Label: "Latitud", Importance: ImportanceNth, Category: "location",
		Done: func(l Listing) bool { return l.Latitude != nil }},
	{ID: "longitude", Label: "Longitud", Importance: ImportanceNth, Category: "location",
		Done: func(l Listing) bool { return l.Longitude != nil }},
	{ID: "near_metro", Label: "Metro cercano", Importance: ImportanceNth, Category: "location",
		Done: func(l Listing) bool { return isTrue(l.NearMetro) }},
	{ID: "near_bus", Label: "Autobús cercano", Importance: ImportanceNth, Category: "location",
		Done: func(l Listing) bool { return isTrue(l.NearBus) }},
	{ID: "near_schools", Label: "Colegios cercanos", Importance: ImportanceNth, Category: "location",
		Done: func(l Listing) bool { return isTrue(l.NearSchools) }},
	{ID: "near_shops", Label: "Comercios cercanos", Importance: ImportanceNth, Category: "location",
		Done: func(l Listing) bool { return isTrue(l.NearShops) }},
	{ID: "near_hospital", Label: "Hospital cercano", Importance: ImportanceNth, Category: "location",
		Done: func(l Listing) bool { return isTrue(l.NearHospital) }},
	{ID: "near_park", Label: "Parque cercano", Importance: ImportanceNth, Category: "location",
		Done: func(l Listing) bool { return isTrue(l.NearPark) }},

	// Economics.
	{ID: "community_fees", Label: "Gastos de comunidad", Importance: ImportanceNth, Category: "economics",
		Done: func(l Listing) bool { return positiveInt64(l.CommunityFees) }},
	{ID: "ibi_annual", Label: "IBI anual", Importance: ImportanceNth, Category: "economics",
		Done: func(l Listing) bool { return positiveInt64(l.IBIAnnual) }},
	{ID: "deposit", Label: "Fianza", Importance: ImportanceNth, Category: "economics",
		Done: func(l Listing) bool { return positiveInt64(l.Deposit) }},
	{ID: "available_from", Label: "Disponible desde", Importance: ImportanceNth, Category: "economics",
		Done: func(l Listing) bool { return l.AvailableFrom != nil }},

	// Media.
	{ID: "title", Label: "Título del anuncio", Importance: ImportanceNth, Category: "media",
		Done: func(l Listing) bool { return hasText(l.Title) }},
	{ID: "description_english", Label: "Descripción en inglés", Importance: ImportanceNth, Category: "media",
		Done: func(l Listing) bool { return hasText(l.DescriptionEnglish) }},
	{ID: "video_url", Label: "Vídeo", Importance: ImportanceNth, Category: "media",
		Done: func(l Listing) bool { return hasText(l.VideoURL) }},
	{ID: "virtual_tour_url", Label: "Tour virtual", Importance: ImportanceNth, Category: "media",
		Done: func(l Listing) bool { return hasText(l.VirtualTourURL) }},
	{ID: "floor_plan_url", Label: "Plano", Importance: ImportanceNth, Category: "media",
		Done: func(l Listing) bool { return hasText(l.FloorPlanURL) }},
	{ID: "images_quality", Label: "Fotos (mínimo 10)", Importance: ImportanceNth, Category: "media",
		Done: func(l Listing) bool { return l.ImageCount >= minQualityImages }},

	// Legal.
	{ID: "cadastral_reference", Label: "Referencia catastral", Importance: ImportanceNth, Category: "legal",
		Done: func(l Listing) bool { return hasText(l.CadastralReference) }},
	{ID: "occupancy_certificate", Label: "Cédula de ocupación", Importance: ImportanceNth, Category: "legal",
		Done: func(l Listing) bool { return isTrue(l.OccupancyCertificate) }},
	{ID: "habitability_certificate", Label: "Cédula de habitabilidad", Importance: ImportanceNth, Category: "legal",
		Done: func(l Listing) bool { return isTrue(l.HabitabilityCert) }},
	{ID: "tourist_license", Label: "Licencia turística", Importance: ImportanceNth, Category: "legal",
		Done: func(l Listing) bool { return isTrue(l.TouristLicense) }},
	{ID: "keys_available", Label: "Llaves disponibles", Importance: ImportanceNth, Category: "legal",
		Done: func(l Listing) bool { return isTrue(l.KeysAvailable) }},
	{ID: "ownership_verified", Label: "Titularidad verificada", Importance: ImportanceNth, Category: "legal",
		Done: func(l Listing) bool { return isTrue(l.OwnershipVerified) }},
}

// Rules returns the full table in evaluation order.
func Rules() []Rule {
	return rules
}
