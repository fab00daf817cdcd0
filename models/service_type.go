package models

// ServiceOption describes one service a walker can offer, with the default
// booking duration the client pre-fills when the service is selected.
type ServiceOption struct {
	Value           string `json:"value"`
	Label           string `json:"label"`
	Icon            string `json:"icon"`
	DefaultDuration int    `json:"default_duration"` // hours
}

// ServiceCatalogue lists every bookable service type.
var ServiceCatalogue = []ServiceOption{
	{Value: "walking", Label: "Paseo", Icon: "walk", DefaultDuration: 1},
	{Value: "daycare", Label: "Guardería", Icon: "home", DefaultDuration: 8},
	{Value: "overnight", Label: "Hospedaje", Icon: "moon", DefaultDuration: 24},
	{Value: "training", Label: "Entrenamiento", Icon: "school", DefaultDuration: 2},
	{Value: "grooming", Label: "Peluquería", Icon: "cut", DefaultDuration: 2},
}

// DefaultServiceDuration returns the canonical duration in hours for a
// service type, and false for unknown types.
func DefaultServiceDuration(serviceType string) (int, bool) {
	for _, opt := range ServiceCatalogue {
		if opt.Value == serviceType {
			return opt.DefaultDuration, true
		}
	}
	return 0, false
}

// PetSizes lists the accepted pet-size values, smallest first.
var PetSizes = []string{"small", "medium", "large", "giant"}

// PetTypes lists the accepted pet-type values.
var PetTypes = []string{"dog", "cat", "bird", "rabbit", "other"}

// StatusLabel carries the presentational attributes for a booking status.
type StatusLabel struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// StatusLabels maps each booking status to its display attributes.
var StatusLabels = map[BookingStatus]StatusLabel{
	BookingPending:    {Label: "Pendiente", Color: "#f59e0b", Icon: "time"},
	BookingConfirmed:  {Label: "Confirmada", Color: "#10b981", Icon: "checkmark-circle"},
	BookingInProgress: {Label: "En curso", Color: "#3b82f6", Icon: "play-circle"},
	BookingCompleted:  {Label: "Completada", Color: "#8b5cf6", Icon: "checkmark-done"},
	BookingCancelled:  {Label: "Cancelada", Color: "#ef4444", Icon: "close-circle"},
}
