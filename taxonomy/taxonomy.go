// Package taxonomy models the schema.org organization-type hierarchy used to
// classify business locations. Only the subtree relevant to local businesses
// is included; unknown types are treated as direct children of Organization.
package taxonomy

// parents maps a business type to its parent type in the schema.org hierarchy.
// The root "Organization" has no entry.
var parents = map[string]string{
	"Airline":               "Organization",
	"Corporation":           "Organization",
	"EducationalOrganization": "Organization",
	"GovernmentOrganization": "Organization",
	"LocalBusiness":         "Organization",
	"NGO":                   "Organization",
	"PerformingGroup":       "Organization",
	"SportsOrganization":    "Organization",

	"AnimalShelter":               "LocalBusiness",
	"AutomotiveBusiness":          "LocalBusiness",
	"ChildCare":                   "LocalBusiness",
	"DryCleaningOrLaundry":        "LocalBusiness",
	"EmergencyService":            "LocalBusiness",
	"EmploymentAgency":            "LocalBusiness",
	"EntertainmentBusiness":       "LocalBusiness",
	"FinancialService":            "LocalBusiness",
	"FoodEstablishment":           "LocalBusiness",
	"GovernmentOffice":            "LocalBusiness",
	"HealthAndBeautyBusiness":     "LocalBusiness",
	"HomeAndConstructionBusiness": "LocalBusiness",
	"InternetCafe":                "LocalBusiness",
	"LegalService":                "LocalBusiness",
	"Library":                     "LocalBusiness",
	"LodgingBusiness":             "LocalBusiness",
	"MedicalBusiness":             "LocalBusiness",
	"ProfessionalService":         "LocalBusiness",
	"RadioStation":                "LocalBusiness",
	"RealEstateAgent":             "LocalBusiness",
	"RecyclingCenter":             "LocalBusiness",
	"SelfStorage":                 "LocalBusiness",
	"ShoppingCenter":              "LocalBusiness",
	"SportsActivityLocation":      "LocalBusiness",
	"Store":                       "LocalBusiness",
	"TelevisionStation":           "LocalBusiness",
	"TouristInformationCenter":    "LocalBusiness",
	"TravelAgency":                "LocalBusiness",

	"Bakery":              "FoodEstablishment",
	"BarOrPub":            "FoodEstablishment",
	"Brewery":             "FoodEstablishment",
	"CafeOrCoffeeShop":    "FoodEstablishment",
	"Distillery":          "FoodEstablishment",
	"FastFoodRestaurant":  "FoodEstablishment",
	"IceCreamShop":        "FoodEstablishment",
	"Restaurant":          "FoodEstablishment",
	"Winery":              "FoodEstablishment",

	"AutoBodyShop":      "AutomotiveBusiness",
	"AutoDealer":        "AutomotiveBusiness",
	"AutoPartsStore":    "AutomotiveBusiness",
	"AutoRental":        "AutomotiveBusiness",
	"AutoRepair":        "AutomotiveBusiness",
	"AutoWash":          "AutomotiveBusiness",
	"GasStation":        "AutomotiveBusiness",
	"MotorcycleDealer":  "AutomotiveBusiness",
	"MotorcycleRepair":  "AutomotiveBusiness",

	"BeautySalon":   "HealthAndBeautyBusiness",
	"DaySpa":        "HealthAndBeautyBusiness",
	"HairSalon":     "HealthAndBeautyBusiness",
	"HealthClub":    "HealthAndBeautyBusiness",
	"NailSalon":     "HealthAndBeautyBusiness",
	"TattooParlor":  "HealthAndBeautyBusiness",

	"BedAndBreakfast": "LodgingBusiness",
	"Campground":      "LodgingBusiness",
	"Hostel":          "LodgingBusiness",
	"Hotel":           "LodgingBusiness",
	"Motel":           "LodgingBusiness",
	"Resort":          "LodgingBusiness",

	"BikeStore":          "Store",
	"BookStore":          "Store",
	"ClothingStore":      "Store",
	"ComputerStore":      "Store",
	"ConvenienceStore":   "Store",
	"DepartmentStore":    "Store",
	"ElectronicsStore":   "Store",
	"Florist":            "Store",
	"FurnitureStore":     "Store",
	"GardenStore":        "Store",
	"GroceryStore":       "Store",
	"HardwareStore":      "Store",
	"HobbyShop":          "Store",
	"JewelryStore":       "Store",
	"LiquorStore":        "Store",
	"MensClothingStore":  "Store",
	"MobilePhoneStore":   "Store",
	"MusicStore":         "Store",
	"OfficeEquipmentStore": "Store",
	"OutletStore":        "Store",
	"PawnShop":           "Store",
	"PetStore":           "Store",
	"ShoeStore":          "Store",
	"SportingGoodsStore": "Store",
	"TireShop":           "Store",
	"ToyStore":           "Store",
	"WholesaleStore":     "Store",

	"Attorney": "LegalService",
	"Notary":   "LegalService",

	"Dentist":         "MedicalBusiness",
	"Optician":        "MedicalBusiness",
	"Pharmacy":        "MedicalBusiness",
	"Physician":       "MedicalBusiness",
	"VeterinaryCare":  "MedicalBusiness",

	"AccountingService": "FinancialService",
	"AutomatedTeller":   "FinancialService",
	"BankOrCreditUnion": "FinancialService",
	"InsuranceAgency":   "FinancialService",

	"Electrician":          "HomeAndConstructionBusiness",
	"GeneralContractor":    "HomeAndConstructionBusiness",
	"HVACBusiness":         "HomeAndConstructionBusiness",
	"HousePainter":         "HomeAndConstructionBusiness",
	"Locksmith":            "HomeAndConstructionBusiness",
	"MovingCompany":        "HomeAndConstructionBusiness",
	"Plumber":              "HomeAndConstructionBusiness",
	"RoofingContractor":    "HomeAndConstructionBusiness",
}

// Known reports whether t is a business type in the modeled hierarchy.
func Known(t string) bool {
	if t == "Organization" {
		return true
	}
	_, ok := parents[t]
	return ok
}

// Parent returns the parent type of t, or "" for the root or unknown types.
func Parent(t string) string {
	return parents[t]
}

// IsDescendantOf reports whether t equals ancestor or sits below it in the
// hierarchy. Unknown types are never descendants of anything but themselves.
func IsDescendantOf(t, ancestor string) bool {
	for t != "" {
		if t == ancestor {
			return true
		}
		t = parents[t]
	}
	return false
}

// IsLocalBusinessSubtype reports whether t is "LocalBusiness" or one of its
// descendants. Price-range and payment properties only apply to these types.
func IsLocalBusinessSubtype(t string) bool {
	return IsDescendantOf(t, "LocalBusiness")
}
