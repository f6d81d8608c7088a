package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Business identifier formats. The sequence is derived from the most recently
// created record of the entity type; concurrent creates can race on it, which
// is accepted at this system's write volume.
const (
	contractNumberPrefix    = "Noc-"
	contractNumberWidth     = 5
	reservationNumberPrefix = "RES-"
	reservationNumberWidth  = 4
	infractionNumberPrefix  = "INF-"
	infractionNumberWidth   = 5
	paymentNumberPrefix     = "REG-"
	paymentNumberWidth      = 3
)

// nextSequential returns the identifier following prev for a fixed
// prefix/width scheme. An empty or unparsable prev yields the seed (sequence 1).
func nextSequential(prev, prefix string, width int) string {
	seq := 1
	if suffix, ok := strings.CutPrefix(prev, prefix); ok {
		if n, err := strconv.Atoi(suffix); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, seq)
}

func NextContractNumber(prev string) string {
	return nextSequential(prev, contractNumberPrefix, contractNumberWidth)
}

func NextReservationNumber(prev string) string {
	return nextSequential(prev, reservationNumberPrefix, reservationNumberWidth)
}

func NextInfractionNumber(prev string) string {
	return nextSequential(prev, infractionNumberPrefix, infractionNumberWidth)
}

// NextPaymentNumber produces REG-<year>-NNN. The sequence restarts at 001
// whenever the year embedded in the previous number differs from now's year.
func NextPaymentNumber(prev string, now time.Time) string {
	year := now.Year()
	seq := 1
	if rest, ok := strings.CutPrefix(prev, paymentNumberPrefix); ok {
		parts := strings.SplitN(rest, "-", 2)
		if len(parts) == 2 {
			prevYear, yearErr := strconv.Atoi(parts[0])
			prevSeq, seqErr := strconv.Atoi(parts[1])
			if yearErr == nil && seqErr == nil && prevYear == year {
				seq = prevSeq + 1
			}
		}
	}
	return fmt.Sprintf("%s%d-%0*d", paymentNumberPrefix, year, paymentNumberWidth, seq)
}

// NewInvoiceNumber derives from wall-clock milliseconds rather than a
// sequence; collisions are ruled out only by write throughput.
func NewInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%d", now.UnixMilli())
}
