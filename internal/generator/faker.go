package generator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/mockdata/internal/pools"
	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/google/uuid"
)

// Identity-like types rotate through their pool by row index so previews read
// naturally. Category types (department, color, gender) are drawn at random.
func (g *Generator) generateText(t types.SemanticType, opts types.TextOptions, rowIndex int) string {
	switch t {
	case types.TypeString:
		return rotate(subtypePool(opts.Subtype), rowIndex)
	case types.TypeName:
		return rotate(pools.FullNames, rowIndex)
	case types.TypeEmail:
		return generateEmail(rowIndex)
	case types.TypePhone:
		return g.generatePhone()
	case types.TypeAddress:
		return generateAddress(rowIndex)
	case types.TypeCity:
		return rotate(pools.Cities, rowIndex)
	case types.TypeState:
		return rotate(pools.States, rowIndex)
	case types.TypeZipCode:
		return fmt.Sprintf("%05d", 10000+(rowIndex*7919)%90000)
	case types.TypeCountry:
		return rotate(pools.Countries, rowIndex)
	case types.TypeCompany:
		return rotate(pools.Companies, rowIndex)
	case types.TypeJobTitle:
		return rotate(pools.JobTitles, rowIndex)
	case types.TypeURL:
		return generateURL(rowIndex)
	case types.TypeDepartment:
		return pick(g.src, pools.Departments)
	case types.TypeColor:
		return pick(g.src, pools.Colors)
	case types.TypeGender:
		return pick(g.src, pools.Genders)
	case types.TypeDate:
		return g.now().UTC().AddDate(0, 0, -rowIndex).Format("2006-01-02")
	case types.TypeDateTime:
		return g.now().UTC().Add(-time.Duration(rowIndex) * time.Hour).Format("2006-01-02 15:04:05")
	case types.TypeTime:
		return g.now().UTC().Add(-time.Duration(rowIndex) * time.Minute).Format("15:04:05")
	}
	return "Data " + strconv.Itoa(rowIndex+1)
}

func subtypePool(s types.StringSubtype) []string {
	switch s {
	case types.SubtypeFirstName:
		return pools.FirstNames
	case types.SubtypeLastName:
		return pools.LastNames
	case types.SubtypeCountries:
		return pools.Countries
	case types.SubtypeCities:
		return pools.Cities
	case types.SubtypeProducts:
		return pools.Products
	case types.SubtypeCategories:
		return pools.Categories
	case types.SubtypeCompanies:
		return pools.Companies
	case types.SubtypeDepartment:
		return pools.Departments
	case types.SubtypeColors:
		return pools.Colors
	case types.SubtypeLorem:
		return pools.LoremSentences
	default:
		return pools.FullNames
	}
}

// generateEmail appends a numeric variation once the prefix pool has wrapped so
// later rows rarely collide with earlier ones.
func generateEmail(rowIndex int) string {
	prefixes, domains := pools.EmailPrefixes, pools.EmailDomains
	prefix := prefixes[rowIndex%len(prefixes)]
	domain := domains[(rowIndex/5)%len(domains)]
	if rowIndex > len(prefixes) {
		prefix += strconv.Itoa(rowIndex / len(prefixes))
	}
	return prefix + "@" + domain
}

func (g *Generator) generatePhone() string {
	return fmt.Sprintf("+91-%010d", int64n(g.src, 10_000_000_000))
}

func generateAddress(rowIndex int) string {
	street := pools.Streets[rowIndex%len(pools.Streets)]
	city := pools.Cities[(rowIndex/len(pools.Streets))%len(pools.Cities)]
	return fmt.Sprintf("%d %s, %s", rowIndex+100, street, city)
}

func generateURL(rowIndex int) string {
	host := pools.URLHosts[rowIndex%len(pools.URLHosts)]
	path := pools.URLPaths[(rowIndex/len(pools.URLHosts))%len(pools.URLPaths)]
	if path == "" {
		return "https://www." + host
	}
	return "https://www." + host + "/" + path
}

// generateParagraph joins three consecutive lorem sentences starting at rowIndex.
func (g *Generator) generateParagraph(rowIndex int) string {
	sentences := make([]string, 3)
	for i := range sentences {
		sentences[i] = rotate(pools.LoremSentences, rowIndex+i)
	}
	return strings.Join(sentences, " ")
}

func (g *Generator) generateWord() string {
	return pick(g.src, pools.LoremWords)
}

func newUUID(src Source) (string, error) {
	id, err := uuid.NewRandomFromReader(byteReader{src: src})
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
