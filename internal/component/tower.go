// component/tower.go
package component

import "go-path-defense/internal/defs"

type Tower struct {
	Kind     defs.TowerKind
	Level    int // >= 1
	Invested int // Стоимость установки плюс все улучшения
}
