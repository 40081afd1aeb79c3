package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// statedExperiencePatterns match explicit claims like "8 years of experience".
// Group 1 is always the year count.
var statedExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?).*?(?:experience|exp)`),
	regexp.MustCompile(`(?:experience|exp).*?(\d+)\+?\s*(?:years?|yrs?)`),
	regexp.MustCompile(`over\s+(\d+)\s+(?:years?|yrs?)`),
	regexp.MustCompile(`more\s+than\s+(\d+)\s+(?:years?|yrs?)`),
}

// dateRangePatterns match employment spans like "2018 - 2022", "2019 – present",
// "03/2019 - 06/2021".
var dateRangePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present|current)`),
	regexp.MustCompile(`(?i)(\d{1,2}/\d{4})\s*[-–]\s*(\d{1,2}/\d{4}|present|current)`),
}

var yearInDate = regexp.MustCompile(`\d{4}`)

// ExperienceYears estimates total years of experience. It collects every
// explicit "N years" claim (bounded to 0 < N < 50) and the sum of employment
// date-range spans, then returns the maximum value seen: the best single claim
// of total experience anywhere in the text. This is deliberately the opposite
// of the job-description side, which takes the minimum stated requirement.
func (e *Extractor) ExperienceYears(text string) int {
	textLower := strings.ToLower(text)
	years := make([]int, 0)

	for _, pattern := range statedExperiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(textLower, -1) {
			year, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if year > 0 && year < 50 {
				years = append(years, year)
			}
		}
	}

	if dateYears := e.experienceFromDateRanges(text); dateYears > 0 {
		years = append(years, dateYears)
	}

	maxYears := 0
	for _, y := range years {
		if y > maxYears {
			maxYears = y
		}
	}
	return maxYears
}

// experienceFromDateRanges sums the spans of all employment date ranges.
// Each individual span must be under 30 years to count.
func (e *Extractor) experienceFromDateRanges(text string) int {
	totalYears := 0
	for _, pattern := range dateRangePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			start, end := match[1], match[2]

			startYearText := yearInDate.FindString(start)
			if startYearText == "" {
				continue
			}
			startYear, err := strconv.Atoi(startYearText)
			if err != nil {
				continue
			}

			endYear := e.referenceYear
			if lower := strings.ToLower(end); lower != "present" && lower != "current" {
				endYearText := yearInDate.FindString(end)
				if endYearText == "" {
					continue
				}
				endYear, err = strconv.Atoi(endYearText)
				if err != nil {
					continue
				}
			}

			span := endYear - startYear
			if span > 0 && span < 30 {
				totalYears += span
			}
		}
	}
	return totalYears
}
