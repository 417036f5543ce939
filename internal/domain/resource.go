package domain

// ResourceType тип бронируемого ресурса клуба
type ResourceType string

const (
	ResourcePC          ResourceType = "pc"
	ResourcePlayStation ResourceType = "playstation"
	ResourceBilliards   ResourceType = "billiards"
	ResourceKaraoke     ResourceType = "karaoke"
)

// AllResourceTypes перечисляет типы ресурсов в порядке отображения
var AllResourceTypes = []ResourceType{
	ResourcePC,
	ResourcePlayStation,
	ResourceBilliards,
	ResourceKaraoke,
}

// resourceCapacity количество взаимозаменяемых единиц каждого типа
var resourceCapacity = map[ResourceType]int{
	ResourcePC:          5,
	ResourcePlayStation: 3,
	ResourceBilliards:   1,
	ResourceKaraoke:     1,
}

var resourceLabels = map[ResourceType]string{
	ResourcePC:          "PC Gaming",
	ResourcePlayStation: "PlayStation",
	ResourceBilliards:   "Billiards",
	ResourceKaraoke:     "Karaoke",
}

var resourceUnitLabels = map[ResourceType]string{
	ResourcePC:          "PCs",
	ResourcePlayStation: "consoles",
	ResourceBilliards:   "tables",
	ResourceKaraoke:     "rooms",
}

// IsValid returns true for a known resource type
func (t ResourceType) IsValid() bool {
	_, ok := resourceCapacity[t]
	return ok
}

// Capacity returns the fixed number of units of the type, 0 for an unknown type
func (t ResourceType) Capacity() int {
	return resourceCapacity[t]
}

// Label returns the human readable name used in notifications
func (t ResourceType) Label() string {
	if label, ok := resourceLabels[t]; ok {
		return label
	}
	return string(t)
}

// UnitLabel returns the plural unit name ("PCs", "rooms", ...)
func (t ResourceType) UnitLabel() string {
	return resourceUnitLabels[t]
}

// IsSingleUnit returns true for types booked strictly one unit at a time
func (t ResourceType) IsSingleUnit() bool {
	return t == ResourcePlayStation || t == ResourceBilliards
}

// QuantityMultipliesPrice returns true when booking several units multiplies the price
func (t ResourceType) QuantityMultipliesPrice() bool {
	return t == ResourcePC || t == ResourceKaraoke
}

// NormalizeQuantity приводит запрошенное количество к допустимому для типа:
// не указанное (0) считается 1, для консолей и бильярда всегда 1
func (t ResourceType) NormalizeQuantity(quantity int) int {
	if t.IsSingleUnit() || quantity == 0 {
		return 1
	}
	return quantity
}
