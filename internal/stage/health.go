package stage

// Health is one review stage's readiness report, produced by its HealthCheck
// before the daemon starts claiming jobs.
type Health struct {
	Name   string
	Ready  bool
	Detail string
}

// Healthy constructs a ready Health record.
func Healthy(name string) Health {
	return Health{Name: name, Ready: true}
}

// Unhealthy constructs a not-ready record carrying the blocking detail, such
// as an unreadable requirements file or a missing data directory.
func Unhealthy(name, detail string) Health {
	return Health{Name: name, Ready: false, Detail: detail}
}
