package model

import "fmt"

// RoomType classifies teaching rooms.
type RoomType int

const (
	LectureRoom RoomType = iota
	ComputerLab
	HardwareLab
)

var roomTypeNames = map[RoomType]string{
	LectureRoom: "LECTURE_ROOM",
	ComputerLab: "COMPUTER_LAB",
	HardwareLab: "HARDWARE_LAB",
}

func (t RoomType) String() string {
	return roomTypeNames[t]
}

func ParseRoomType(value string) (RoomType, error) {
	for roomType, name := range roomTypeNames {
		if name == value {
			return roomType, nil
		}
	}
	return 0, fmt.Errorf("invalid room type: %q", value)
}

// Room is an immutable catalog entry for one teaching room.
type Room struct {
	ID       int64
	Number   string
	Capacity int
	Type     RoomType
}

// IsLabRoom reports whether the room can host practical sessions.
func (r *Room) IsLabRoom() bool {
	return r.Type == ComputerLab || r.Type == HardwareLab
}

// IdealDailyLoad is the target lesson count per week used for load balancing.
func (r *Room) IdealDailyLoad() int {
	if r.Type == LectureRoom {
		return 5
	}
	return 2
}
