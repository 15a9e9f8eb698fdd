package engine

// RoomFilter narrows a fetched room list client-side. Zero values mean
// "don't care"; MaxPrice of 0 leaves the price unconstrained.
type RoomFilter struct {
	Status   RoomStatus
	RoomType RoomType
	Guests   int
	MaxPrice Cents
}

func FilterRooms(rooms []RoomOffer, filter RoomFilter) []RoomOffer {
	result := make([]RoomOffer, 0, len(rooms))

	for _, room := range rooms {
		if filter.Status != "" && room.Status != filter.Status {
			continue
		}

		if filter.RoomType != "" && room.RoomType != filter.RoomType {
			continue
		}

		if filter.Guests > 0 && room.Capacity < filter.Guests {
			continue
		}

		if filter.MaxPrice > 0 && room.Price > filter.MaxPrice {
			continue
		}

		result = append(result, room)
	}

	return result
}
