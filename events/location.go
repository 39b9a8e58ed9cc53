package events

type Location struct {
	Name       string  `yaml:"name"`
	LocAddress Address `yaml:"address"`
}

type Address struct {
	Street  string `yaml:"street"`
	City    string `yaml:"city"`
	Country string `yaml:"country"`
}
