// Package rules runs the deterministic purchase-order checks.
//
// Each check scans the full normalized document text for fixed phrases or
// patterns drawn from the house rules: warranty period, hidden defects
// window, accessories, IP indemnity, termination and set-off, liquidated
// damages, partial shipments, delivery anchor, quality-control documents,
// fx market rate usage, Incoterm presence, and payment guarantees. Checks are
// pure functions over the text; a check that finds no evidence reports FAIL
// or UNCERTAIN depending on how strong the house rule is.
package rules

import (
	"regexp"
	"strings"

	"clausecheck/internal/textnorm"
)

// Status is the verdict of one deterministic check.
type Status string

const (
	StatusPass      Status = "PASS"
	StatusFail      Status = "FAIL"
	StatusUncertain Status = "UNCERTAIN"
)

// Result captures the outcome of a single check.
type Result struct {
	Status   Status   `json:"status"`
	Expected string   `json:"expected"`
	Found    []string `json:"found,omitempty"`
}

// ResultMap maps check names to their results.
type ResultMap map[string]Result

var (
	incotermPattern = regexp.MustCompile(`(?i)\b(DDP|EXW|FCA|FOB|CFR|CIF|CPT|CIP|DAP|DPU|DDU)\b`)
	fxRatePattern   = regexp.MustCompile(`(?i)fxmarketrate`)
	ldPatterns      = []string{`۰\.۲۵`, `0\.25`, `بیست و پنج صدم`}

	// Patterns are normalized the same way the document text is, so the
	// Persian-digit spelling matches digit-folded text.
	ldCompiled = func() []*regexp.Regexp {
		compiled := make([]*regexp.Regexp, len(ldPatterns))
		for i, pattern := range ldPatterns {
			compiled[i] = regexp.MustCompile(textnorm.Normalize(pattern))
		}
		return compiled
	}()
)

type check struct {
	name string
	run  func(text string) Result
}

var checks = []check{
	{"warranty", checkWarranty},
	{"hidden_defects", checkHiddenDefects},
	{"accessories", checkAccessories},
	{"ip_indemnity", checkIPIndemnity},
	{"termination_setoff", checkTerminationSetoff},
	{"ld", checkLiquidatedDamages},
	{"partial_shipments", checkPartialShipments},
	{"delivery_anchor", checkDeliveryAnchor},
	{"qc_docs", checkQCDocs},
	{"fx_rate", checkFXRate},
	{"incoterm", checkIncoterm},
	{"payment_guarantee", checkPaymentGuarantee},
	{"advance_payment_guarantee", checkAdvanceGuarantee},
}

// Run executes the full check battery over the document text. The text is
// normalized before matching so checks behave identically on raw and
// pre-normalized input.
func Run(text string) ResultMap {
	normalized := textnorm.Normalize(text)
	results := make(ResultMap, len(checks))
	for _, c := range checks {
		results[c.name] = c.run(normalized)
	}
	return results
}

// contains reports whether the normalized form of phrase occurs in text.
// Expected phrases are written with Persian digits in the house rules; the
// document text has already been digit-folded, so the phrase must be too.
func contains(text, phrase string) bool {
	return strings.Contains(text, textnorm.Normalize(phrase))
}

func foundKeywords(text string, keywords []string) []string {
	var found []string
	for _, kw := range keywords {
		if contains(text, kw) {
			found = append(found, kw)
		}
	}
	return found
}

func checkWarranty(text string) Result {
	const expected = "۱۲ ماه پس از نصب"
	status := StatusFail
	var found []string
	if contains(text, expected) {
		status = StatusPass
		found = []string{expected}
	}
	return Result{Status: status, Expected: expected, Found: found}
}

func checkHiddenDefects(text string) Result {
	const expected = "۶۰ روز پس از تحویل"
	status := StatusFail
	var found []string
	if contains(text, expected) {
		status = StatusPass
		found = []string{expected}
	}
	return Result{Status: status, Expected: expected, Found: found}
}

func checkAccessories(text string) Result {
	keywords := []string{"پایه", "کابل", "لوله", "درین"}
	found := foundKeywords(text, keywords)
	status := StatusUncertain
	if len(found) > 0 {
		status = StatusPass
	}
	return Result{Status: status, Expected: strings.Join(keywords, ", "), Found: found}
}

func checkIPIndemnity(text string) Result {
	keywords := []string{"مالکیت فکری", "مالکیت معنوی", "IP"}
	found := foundKeywords(text, keywords)
	status := StatusUncertain
	if len(found) > 0 {
		status = StatusPass
	}
	return Result{Status: status, Expected: strings.Join(keywords, ", "), Found: found}
}

func checkTerminationSetoff(text string) Result {
	keywords := []string{"فسخ", "تهاتر", "۱۵", "پانزده"}
	found := foundKeywords(text, keywords)
	status := StatusUncertain
	if len(found) == len(keywords) {
		status = StatusPass
	}
	return Result{Status: status, Expected: strings.Join(keywords, " + "), Found: found}
}

func checkLiquidatedDamages(text string) Result {
	var found []string
	for i, re := range ldCompiled {
		if re.MatchString(text) {
			found = append(found, ldPatterns[i])
		}
	}
	status := StatusFail
	if len(found) > 0 {
		status = StatusPass
	}
	return Result{Status: status, Expected: "0.25% per day", Found: found}
}

func checkPartialShipments(text string) Result {
	const phrase = "ارسال جزئی"
	found := contains(text, phrase) && (contains(text, "تأیید") || contains(text, "اجازه"))
	status := StatusUncertain
	var evidence []string
	if found {
		status = StatusPass
		evidence = []string{phrase}
	}
	return Result{Status: status, Expected: phrase + " + approval", Found: evidence}
}

func checkDeliveryAnchor(text string) Result {
	keywords := []string{"تاریخ اثر", "تاریخ پرداخت پیش پرداخت", "روز به روز"}
	found := foundKeywords(text, keywords)
	status := StatusUncertain
	if len(found) == len(keywords) {
		status = StatusPass
	}
	return Result{Status: status, Expected: strings.Join(keywords, " + "), Found: found}
}

func checkQCDocs(text string) Result {
	keywords := []string{"Packing List", "MTC", "CoC", "Final Book"}
	found := foundKeywords(text, keywords)
	status := StatusUncertain
	if len(found) == len(keywords) {
		status = StatusPass
	}
	return Result{Status: status, Expected: strings.Join(keywords, " + "), Found: found}
}

func checkFXRate(text string) Result {
	status := StatusUncertain
	var found []string
	if fxRatePattern.MatchString(text) {
		status = StatusPass
		found = []string{"fxmarketrate"}
	}
	return Result{Status: status, Expected: "fxmarketrate", Found: found}
}

func checkIncoterm(text string) Result {
	match := incotermPattern.FindStringSubmatch(text)
	if match == nil {
		return Result{Status: StatusFail, Expected: "Incoterm designation"}
	}
	return Result{Status: StatusPass, Expected: "Incoterm designation", Found: []string{match[1]}}
}

func checkPaymentGuarantee(text string) Result {
	keywords := []string{"۱۰", "ده", "BG", "ضمانت"}
	found := foundKeywords(text, keywords)
	status := StatusUncertain
	if len(found) > 0 {
		status = StatusPass
	}
	return Result{Status: status, Expected: strings.Join(keywords, ", "), Found: found}
}

func checkAdvanceGuarantee(text string) Result {
	keywords := []string{"۱۰۰", "صد", "120", "۱۲۰", "cheque", "چک"}
	found := foundKeywords(text, keywords)
	status := StatusUncertain
	if len(found) > 0 {
		status = StatusPass
	}
	return Result{Status: status, Expected: strings.Join(keywords, ", "), Found: found}
}
