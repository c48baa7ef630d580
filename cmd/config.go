package cmd

type Config struct {
	HTTPPort        string
	MonitorCronSpec string
	LogLevel        string
}
