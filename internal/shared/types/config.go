package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	ServicesFilter []string `json:"services_filter" yaml:"services_filter" toml:"services_filter"`
	RegionsFilter  []string `json:"regions_filter" yaml:"regions_filter" toml:"regions_filter"`
	CostThreshold  Amount   `json:"cost_threshold" yaml:"cost_threshold" toml:"cost_threshold"`
	StartDate      string   `json:"start_date" yaml:"start_date" toml:"start_date"`
	EndDate        string   `json:"end_date" yaml:"end_date" toml:"end_date"`
	MonthsAhead    int      `json:"months_ahead" yaml:"months_ahead" toml:"months_ahead"`
	ReportName     string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType     []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir            string   `json:"dir" yaml:"dir" toml:"dir"`
}
