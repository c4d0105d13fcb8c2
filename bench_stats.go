package copri

import "github.com/montanaflynn/stats"

// timingSummary reports the mean and standard deviation of a series of
// elapsed-time samples, e.g. repeated CB runs under varying
// Options.Threads. It exists for callers that want a quick sanity check
// on whether enabling parallelism actually helped, without pulling in a
// full benchmarking framework. Within this package only its own unit
// tests call it.
func timingSummary(samples []float64) (mean, stddev float64, err error) {
	mean, err = stats.Mean(samples)
	if err != nil {
		return 0, 0, err
	}
	stddev, err = stats.StandardDeviation(samples)
	if err != nil {
		return 0, 0, err
	}
	return mean, stddev, nil
}
