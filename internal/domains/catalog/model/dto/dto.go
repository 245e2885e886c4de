package dto

type PropertiesResponse struct {
	Properties []string `json:"properties"`
}

type RoomTypesResponse struct {
	PropertyName string   `json:"property_name"`
	RoomTypes    []string `json:"room_types"`
}

type RoomsResponse struct {
	PropertyName string   `json:"property_name"`
	RoomType     string   `json:"room_type"`
	Rooms        []string `json:"rooms"`
}
