// Package salon holds the static business catalog: service menu with price
// labels, opening hours, and contact details. This content changes rarely and
// ships with the binary rather than living in the database.
package salon

import (
	"regexp"
	"strconv"

	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/utils"
)

type Service struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Desc  string `json:"desc,omitempty"`
}

type Category struct {
	Title    string    `json:"title"`
	Services []Service `json:"services"`
}

type DayHours struct {
	Day  string `json:"day"`
	Time string `json:"time"`
	Open bool   `json:"open"`
}

type Contact struct {
	Address []string `json:"address"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
}

var catalog = []Category{
	{
		Title: "Signature Styling",
		Services: []Service{
			{Name: "Bangs Cut", Price: "$20+"},
			{Name: "Bangs Trim", Price: "$10+"},
			{Name: "Up-dos", Price: "$65+"},
			{Name: "Hair Cut", Price: "$35+", Desc: "Does not include Styling"},
			{Name: "Keratin Hair Treatment", Price: "$250+"},
			{Name: "Press-Curl", Price: "$55+"},
			{Name: "Spiral Curl", Price: "$55+"},
			{Name: "Men Haircut", Price: "$25+"},
			{Name: "Boys (12 & Under)", Price: "$20+"},
		},
	},
	{
		Title: "Color & Chemical",
		Services: []Service{
			{Name: "Permanent Color", Price: "$70+"},
			{Name: "Semi Permanent Color", Price: "$45+"},
			{Name: "Touch-up Perm and Permanent Color", Price: "$70+"},
			{Name: "Cellophane Rinse Protein Color", Price: "$45+"},
			{Name: "Foil Highlights", Price: "$150+"},
			{Name: "Cap Highlights", Price: "$75+"},
		},
	},
	{
		Title: "Hair Care Treatments",
		Services: []Service{
			{Name: "Relaxers Touch-up", Price: "$95+"},
			{Name: "Full Relaxer", Price: "$120+", Desc: "Includes Style, Trim and Deep Conditioner"},
			{Name: "Full Perm", Price: "$95+"},
		},
	},
}

var hours = []DayHours{
	{Day: "Sunday", Time: "Closed", Open: false},
	{Day: "Monday", Time: "Closed", Open: false},
	{Day: "Tuesday", Time: "10:00 - 5:30", Open: true},
	{Day: "Wednesday", Time: "10:00 - 5:30", Open: true},
	{Day: "Thursday", Time: "10:00 - 5:30", Open: true},
	{Day: "Friday", Time: "10:00 - 5:30", Open: true},
	{Day: "Saturday", Time: "9:30 - 5:30", Open: true},
}

var contact = Contact{
	Address: []string{"2407 South Florida Ave.", "Lakeland, FL 33803"},
	Phone:   "863-940-4469",
	Email:   "info@dominicanstyle.com",
}

func init() {
	for i := range catalog {
		for j := range catalog[i].Services {
			catalog[i].Services[j].Slug = utils.Slugify(catalog[i].Services[j].Name)
		}
	}
}

func Catalog() []Category {
	return catalog
}

func Hours() []DayHours {
	return hours
}

func ContactInfo() Contact {
	return contact
}

func FindService(name string) (Service, bool) {
	for _, cat := range catalog {
		for _, svc := range cat.Services {
			if svc.Name == name {
				return svc, true
			}
		}
	}
	return Service{}, false
}

var priceDigits = regexp.MustCompile(`[0-9]+`)

// PriceValue extracts the numeric part of a price label: "$45+" -> 45.
// Labels with no digits are worth zero.
func PriceValue(label string) int {
	match := priceDigits.FindString(label)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}
