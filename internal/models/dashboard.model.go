package models

// Nested dashboard tree: houses with their rooms, appliances, and parts.
type ApplianceWithParts struct {
	Appliance
	Parts []*Part `json:"parts"`
}

type RoomWithAppliances struct {
	Room
	Appliances []ApplianceWithParts `json:"appliances"`
}

type HouseWithRooms struct {
	House
	Rooms []RoomWithAppliances `json:"rooms"`
}
