package grid

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/sectorgrid/bfs"
)

// MergePolicy chooses the room a newly connected component adopts.
//
// candidates maps every valid room found in the component to its current
// membership count (regions labeled with it). The policy returns one of
// the candidate rooms, or NoRoom to request a fresh id. Any other result is
// treated as NoRoom. The choice only affects labels, never which regions
// share a room.
type MergePolicy func(candidates map[int]int) int

// MajorityRoom adopts the candidate with the largest membership, breaking
// ties toward the lowest room id. It returns NoRoom for no candidates.
func MajorityRoom(candidates map[int]int) int {
	best, bestSize := NoRoom, -1
	for room, size := range candidates {
		if size > bestSize || (size == bestSize && room < best) {
			best, bestSize = room, size
		}
	}
	return best
}

// FreshRoom always requests a new room id.
func FreshRoom(map[int]int) int { return NoRoom }

func (g *Grid) newRoom() int {
	room := g.nextRoom
	g.nextRoom++
	return room
}

// setRoom moves r into room, keeping membership counts and the room tag of
// its thresholds in step.
func (g *Grid) setRoom(r *Region, room int) {
	if r.Room == room {
		return
	}
	g.leaveRoom(r)
	r.Room = room
	if room != NoRoom {
		g.roomSize[room]++
	}
	for _, id := range r.nodes {
		g.thresholds[id].Room = room
	}
}

func (g *Grid) leaveRoom(r *Region) {
	if r.Room == NoRoom {
		return
	}
	g.roomSize[r.Room]--
	if g.roomSize[r.Room] <= 0 {
		delete(g.roomSize, r.Room)
	}
	r.Room = NoRoom
}

// component returns every region reachable from seed through region
// adjacency, seed first, and marks them in visited.
func (g *Grid) component(seed RegionID, visited mapset.Set[RegionID]) []*Region {
	g.stats.RoomFloods++
	// No options and a non-nil neighbor function: BFS cannot fail here.
	res, _ := bfs.BFS(seed, g.adjacentRegions)
	out := make([]*Region, 0, len(res.Order))
	for _, id := range res.Order {
		visited.Put(id)
		out = append(out, g.regions[id])
	}
	return out
}

// adjacentRegions is the neighbor function of the region graph.
func (g *Grid) adjacentRegions(id RegionID) []RegionID {
	return g.neighborIDs(g.regions[id])
}

// labelAll assigns a fresh room to every region in handle order.
func (g *Grid) labelAll() {
	visited := mapset.New[RegionID]()
	for _, id := range g.sortedRegionIDs() {
		if visited.Has(id) {
			continue
		}
		room := g.newRoom()
		for _, r := range g.component(id, visited) {
			g.setRoom(r, room)
		}
	}
}

// relabel recomputes rooms for every component that contains an affected
// region. With fresh set every component gets a new id; otherwise the merge
// policy picks among the rooms already present in the component. A room is
// never handed to two components of the same pass.
func (g *Grid) relabel(affected mapset.Set[RegionID], fresh bool) {
	seeds := sortedIDs(affected)
	visited := mapset.New[RegionID]()
	claimed := mapset.New[int]()
	for _, id := range seeds {
		if visited.Has(id) || g.regions[id] == nil {
			continue
		}
		comp := g.component(id, visited)

		room := NoRoom
		if !fresh {
			candidates := make(map[int]int)
			for _, r := range comp {
				if r.Room != NoRoom && !claimed.Has(r.Room) {
					candidates[r.Room] = g.roomSize[r.Room]
				}
			}
			if pick := g.opts.Merge(candidates); pick != NoRoom {
				if _, ok := candidates[pick]; ok {
					room = pick
				}
			}
		}
		if room == NoRoom {
			room = g.newRoom()
		}
		claimed.Put(room)
		for _, r := range comp {
			g.setRoom(r, room)
		}
	}
}

func (g *Grid) sortedRegionIDs() []RegionID {
	ids := make([]RegionID, 0, len(g.regions))
	for id := range g.regions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
