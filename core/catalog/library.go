package catalog

import (
	"sort"
	"strconv"

	"games-in-common/core/steam"
)

// Library is the set of apps a player owns. An empty Library means the profile is
// private or owns nothing.
type Library map[steam.AppID]struct{}

// NewLibrary builds a Library from ids.
func NewLibrary(ids ...steam.AppID) Library {
	lib := make(Library, len(ids))
	for _, id := range ids {
		lib[id] = struct{}{}
	}
	return lib
}

// Has reports whether id is in the library.
func (l Library) Has(id steam.AppID) bool {
	_, ok := l[id]
	return ok
}

// Sorted returns the app ids in ascending order.
func (l Library) Sorted() []steam.AppID {
	ids := make([]steam.AppID, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clone returns an independent copy.
func (l Library) Clone() Library {
	c := make(Library, len(l))
	for id := range l {
		c[id] = struct{}{}
	}
	return c
}

func (l Library) members() []string {
	if len(l) == 0 {
		return []string{emptyLibraryMember}
	}
	out := make([]string, 0, len(l))
	for _, id := range l.Sorted() {
		out = append(out, id.String())
	}
	return out
}

func libraryFromMembers(members []string) Library {
	lib := make(Library, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		lib[steam.AppID(id)] = struct{}{}
	}
	return lib
}
