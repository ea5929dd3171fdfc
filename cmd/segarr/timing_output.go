package main

import (
	"fmt"
	"io"
	"time"

	"segarr/internal/bench"
)

func printStageTimings(out io.Writer, rep *bench.Report) {
	if out == nil || rep == nil {
		return
	}
	var printErr error
	if rep.Fill > 0 {
		_, printErr = fmt.Fprintf(out, "fill %.1f ms\n", toMillis(rep.Fill))
		if printErr != nil {
			panic(printErr)
		}
	}
	if rep.Sort > 0 {
		_, printErr = fmt.Fprintf(out, "sort %.1f ms\n", toMillis(rep.Sort))
		if printErr != nil {
			panic(printErr)
		}
	}
	if rep.Scan > 0 {
		_, printErr = fmt.Fprintf(out, "scan %.1f ms\n", toMillis(rep.Scan))
		if printErr != nil {
			panic(printErr)
		}
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
