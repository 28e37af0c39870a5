package dashboard

type Dashboard struct {
	Header *Header
	Panel  *Panel
}

func NewDashboard(header *Header, panel *Panel) *Dashboard {
	return &Dashboard{Header: header, Panel: panel}
}
