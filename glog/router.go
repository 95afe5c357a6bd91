// Copyright (c) 2024 BVK Chaitanya

package glog

// route is the precomputed set of destinations for one severity.
type route struct {
	// files holds the log files receiving the severity, most severe first.
	files []*levelFile

	stderr bool
}

// fileSeverities returns the severities that get their own log file, from
// the least to the most severe.
func (v *Backend) fileSeverities() []Severity {
	if v.flags.LogToStderr {
		return nil
	}
	ext := v.flags.ExtendedSeverities
	least := v.flags.MinLogLevel.fold(ext)

	var sevs []Severity
	for _, s := range Severities {
		if s.fold(ext) != s || s < least {
			continue
		}
		sevs = append(sevs, s)
	}
	return sevs
}

// buildRoutes fills the routing table. A record goes to the file of its own
// severity and to the files of all less severe levels, so that the INFO log
// has everything.
func (v *Backend) buildRoutes() {
	ext := v.flags.ExtendedSeverities
	for i, s := range Severities {
		folded := s.fold(ext)
		r := route{
			stderr: v.flags.LogToStderr || v.flags.AlsoLogToStderr || folded >= v.flags.StderrThreshold,
		}
		for l := folded; l >= Trace; l-- {
			if lf, ok := v.files[l]; ok {
				r.files = append(r.files, lf)
			}
		}
		v.routes[i] = r
	}
}

// routeOf returns the destinations for a severity. Out of range severities
// are clamped.
func (v *Backend) routeOf(s Severity) *route {
	if s < Trace {
		s = Trace
	}
	if s > Fatal {
		s = Fatal
	}
	return &v.routes[s-Trace]
}
