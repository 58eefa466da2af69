package users

import (
	"slices"

	"github.com/cloudfit/interviewd/internal/timeslot"
)

// User is an HR manager or an interviewer known to the registry.
// The registry owns every User; callers only see copies.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`

	// Availability keeps insertion order and is never merged or
	// deduplicated.
	Availability []timeslot.Slot `json:"availability"`

	// Booked holds ids of interviews currently linked to the user,
	// sorted ascending with no duplicates.
	Booked []int64 `json:"booked"`
}

func (u *User) AddAvailability(slot timeslot.Slot) {
	u.Availability = append(u.Availability, slot)
}

// IsAvailable reports whether some single availability entry contains
// the whole slot. A slot spanning two adjacent entries is not covered.
func (u *User) IsAvailable(slot timeslot.Slot) bool {
	for _, a := range u.Availability {
		if a.Contains(slot) {
			return true
		}
	}
	return false
}

// AddBooking inserts an interview id keeping Booked sorted.
// Adding a present id is a no-op.
func (u *User) AddBooking(id int64) {
	idx, found := slices.BinarySearch(u.Booked, id)
	if found {
		return
	}
	u.Booked = slices.Insert(u.Booked, idx, id)
}

// RemoveBooking drops an interview id. Removing an absent id is a no-op.
func (u *User) RemoveBooking(id int64) {
	idx, found := slices.BinarySearch(u.Booked, id)
	if !found {
		return
	}
	u.Booked = slices.Delete(u.Booked, idx, idx+1)
}

func (u *User) HasBooking(id int64) bool {
	_, found := slices.BinarySearch(u.Booked, id)
	return found
}

// Clone detaches the user from registry-owned backing arrays.
func (u *User) Clone() User {
	c := *u
	c.Availability = slices.Clone(u.Availability)
	c.Booked = slices.Clone(u.Booked)
	return c
}
