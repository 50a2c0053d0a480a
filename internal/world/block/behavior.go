package block

// Metadata произвольные метаданные блока
type Metadata map[string]interface{}

// Drop описывает предмет, выпадающий при разрушении блока
type Drop struct {
	Item  string // Ресурсное имя предмета
	Count int    // Количество
}

// BlockBehavior определяет поведение блока
type BlockBehavior interface {
	ID() BlockID
	Name() string
	// Passable сообщает, можно ли пройти сквозь блок (воздух, вода)
	Passable() bool
	// NeedsTick сообщает, требует ли блок периодических обновлений
	NeedsTick() bool
	// CreateMetadata создаёт начальные метаданные для блока
	CreateMetadata() Metadata
	// Drops возвращает предметы, выпадающие при разрушении
	Drops() []Drop
}
