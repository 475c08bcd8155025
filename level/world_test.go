package level

import "github.com/yohamta/donburi"

func newWorld() donburi.World {
	return donburi.NewWorld()
}
