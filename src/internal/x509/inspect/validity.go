// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inspect

import (
	"fmt"
	"time"
)

// secondsPerDay is used on Unix seconds so notAfter values past the
// time.Duration range (such as 99991231235959Z) still count correctly.
const secondsPerDay = 86400

// Evaluate computes the validity flag and time to expiration of a certificate at now.
//
// The certificate is valid when now lies within [notBefore, notAfter], bounds included.
// The time to expiration is the number of whole days left, formatted as "N day(s)",
// and is empty once notAfter is not strictly after now. Fractions of a day are truncated.
func Evaluate(notBefore, notAfter, now time.Time) (bool, string) {
	valid := !now.Before(notBefore) && !now.After(notAfter)

	if !notAfter.After(now) {
		return valid, ""
	}

	days := (notAfter.Unix() - now.Unix()) / secondsPerDay
	return valid, fmt.Sprintf("%d day(s)", days)
}

// DaysUntil returns the whole days from now until notAfter, negative once expired.
func DaysUntil(notAfter, now time.Time) int {
	return int((notAfter.Unix() - now.Unix()) / secondsPerDay)
}
