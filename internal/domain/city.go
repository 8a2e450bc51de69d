package domain

// City entry of the city catalog
type City struct {
	Value string // Идентификатор (например, "paris")
	Label string // Отображаемое название (например, "Paris")
}

// CityCatalog закрытый упорядоченный список городов для выбора
type CityCatalog struct {
	cities []City
	index  map[string]int
}

// DefaultCities список европейских столиц
var DefaultCities = []City{
	{Value: "amsterdam", Label: "Amsterdam"},
	{Value: "berlin", Label: "Berlin"},
	{Value: "brussels", Label: "Brussels"},
	{Value: "london", Label: "London"},
	{Value: "madrid", Label: "Madrid"},
	{Value: "paris", Label: "Paris"},
	{Value: "rome", Label: "Rome"},
	{Value: "stockholm", Label: "Stockholm"},
	{Value: "vienna", Label: "Vienna"},
	{Value: "warsaw", Label: "Warsaw"},
}

// NewCityCatalog builds a catalog preserving the given order.
// Duplicate identifiers keep the first occurrence.
func NewCityCatalog(cities []City) *CityCatalog {
	c := &CityCatalog{
		cities: make([]City, 0, len(cities)),
		index:  make(map[string]int, len(cities)),
	}
	for _, city := range cities {
		if _, exists := c.index[city.Value]; exists {
			continue
		}
		c.index[city.Value] = len(c.cities)
		c.cities = append(c.cities, city)
	}
	return c
}

// DefaultCityCatalog returns the built-in catalog
func DefaultCityCatalog() *CityCatalog {
	return NewCityCatalog(DefaultCities)
}

// Contains returns true if the identifier belongs to the catalog
func (c *CityCatalog) Contains(value string) bool {
	_, ok := c.index[value]
	return ok
}

// Label возвращает отображаемое название города.
// Для неизвестного идентификатора возвращается сам идентификатор.
func (c *CityCatalog) Label(value string) string {
	if i, ok := c.index[value]; ok {
		return c.cities[i].Label
	}
	return value
}

// Cities returns a copy of the catalog entries in order
func (c *CityCatalog) Cities() []City {
	out := make([]City, len(c.cities))
	copy(out, c.cities)
	return out
}

// Len returns the number of cities
func (c *CityCatalog) Len() int {
	return len(c.cities)
}
