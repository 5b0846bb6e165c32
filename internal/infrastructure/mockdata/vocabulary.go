package mockdata

import "github.com/LeeFlannery/dashboard-playground/internal/domain/entities"

var browsers = []string{"Chrome", "Safari", "Firefox", "Edge", "Opera"}

var countries = []string{
	"United States", "Canada", "United Kingdom", "Germany", "France",
	"Australia", "Japan", "Brazil", "India", "Mexico",
}

// citiesByCountry must have an entry for every country above.
var citiesByCountry = map[string][]string{
	"United States":  {"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose"},
	"Canada":         {"Toronto", "Montreal", "Vancouver", "Calgary", "Edmonton", "Ottawa", "Winnipeg", "Quebec City", "Hamilton", "Kitchener"},
	"United Kingdom": {"London", "Birmingham", "Manchester", "Glasgow", "Liverpool", "Leeds", "Sheffield", "Edinburgh", "Bristol", "Cardiff"},
	"Germany":        {"Berlin", "Hamburg", "Munich", "Cologne", "Frankfurt", "Stuttgart", "Düsseldorf", "Dortmund", "Essen", "Leipzig"},
	"France":         {"Paris", "Marseille", "Lyon", "Toulouse", "Nice", "Nantes", "Strasbourg", "Montpellier", "Bordeaux", "Lille"},
	"Australia":      {"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide", "Gold Coast", "Newcastle", "Canberra", "Sunshine Coast", "Wollongong"},
	"Japan":          {"Tokyo", "Yokohama", "Osaka", "Nagoya", "Sapporo", "Fukuoka", "Kobe", "Kyoto", "Kawasaki", "Saitama"},
	"Brazil":         {"São Paulo", "Rio de Janeiro", "Brasília", "Salvador", "Fortaleza", "Belo Horizonte", "Manaus", "Curitiba", "Recife", "Porto Alegre"},
	"India":          {"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai", "Kolkata", "Pune", "Ahmedabad", "Surat", "Jaipur"},
	"Mexico":         {"Mexico City", "Guadalajara", "Monterrey", "Puebla", "Tijuana", "Ciudad Juárez", "León", "Zapopan", "Nezahualcóyotl", "Guadalupe"},
}

var referrerDomains = []string{"google.com", "facebook.com", "twitter.com", "linkedin.com", "reddit.com"}

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda", "William", "Elizabeth",
	"David", "Barbara", "Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Christopher", "Karen",
	"Charles", "Nancy", "Daniel", "Lisa", "Matthew", "Betty", "Anthony", "Helen", "Mark", "Sandra",
	"Donald", "Donna", "Steven", "Carol", "Paul", "Ruth", "Andrew", "Sharon", "Joshua", "Michelle",
	"Kenneth", "Laura", "Kevin", "Emily", "Brian", "Kimberly", "George", "Deborah", "Edward", "Dorothy",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
	"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
	"Walker", "Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell", "Carter", "Roberts",
}

var emailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "company.com"}

var themes = []string{"light", "dark", "system"}

var languages = []string{"en", "es", "fr", "de", "ja", "pt"}

var campaigns = []string{
	"summer_sale_2024", "black_friday", "new_user_discount", "referral_program",
	"social_media_ads", "google_ads", "email_campaign", "blog_traffic",
}

var productCategories = []string{"software", "service", "consulting", "training"}

var (
	deviceTypes       = entities.DeviceTypes
	userRoles         = entities.UserRoles
	userStatuses      = entities.UserStatuses
	conversionTypes   = entities.ConversionTypes
	conversionSources = entities.ConversionSources
)

// Countries returns a copy of the country table.
func Countries() []string {
	return append([]string(nil), countries...)
}

// CitiesOf returns the cities known for country, or nil.
func CitiesOf(country string) []string {
	return append([]string(nil), citiesByCountry[country]...)
}
