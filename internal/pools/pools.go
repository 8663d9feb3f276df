// Package pools holds the static reference lists the generators draw from.
package pools

var FullNames = []string{
	"John Smith", "Sarah Johnson", "Michael Brown", "Emily Davis", "David Wilson",
	"Lisa Anderson", "Robert Taylor", "Jennifer Martinez", "William Garcia", "Mary Rodriguez",
}

var FirstNames = []string{
	"John", "Sarah", "Michael", "Emily", "David", "Lisa", "Robert", "Jennifer", "William", "Mary",
}

var LastNames = []string{
	"Smith", "Johnson", "Brown", "Davis", "Wilson", "Anderson", "Taylor", "Martinez", "Garcia", "Rodriguez",
}

var EmailPrefixes = []string{
	"john.smith", "sarah.johnson", "mike.brown", "emily.davis", "david.wilson",
	"lisa.anderson", "robert.taylor", "jennifer.martinez", "william.garcia", "mary.rodriguez",
	"james.miller", "patricia.moore", "christopher.jackson", "linda.white", "daniel.harris",
	"barbara.martin", "matthew.thompson", "elizabeth.garcia", "anthony.martinez", "helen.robinson",
	"mark.clark", "nancy.lewis", "donald.lee", "betty.walker", "steven.hall",
	"dorothy.allen", "paul.young", "sandra.hernandez", "andrew.king", "donna.wright",
	"joshua.lopez", "carol.hill", "kenneth.scott", "ruth.green", "kevin.adams",
	"sharon.baker", "brian.gonzalez", "michelle.nelson", "george.carter", "laura.mitchell",
}

var EmailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "aol.com",
	"icloud.com", "protonmail.com", "zoho.com", "mail.com", "yandex.com",
	"fastmail.com", "tutanota.com", "gmx.com", "live.com", "msn.com",
	"rediffmail.com", "inbox.com", "hushmail.com", "guerrillamail.com", "tempmail.org",
}

var Countries = []string{
	"India", "United States", "China", "Japan", "Germany",
	"United Kingdom", "France", "Italy", "Brazil", "Canada",
}

var Cities = []string{
	"Mumbai", "New York", "London", "Tokyo", "Paris",
	"Berlin", "Sydney", "Toronto", "Singapore", "Dubai",
}

var States = []string{
	"California", "Texas", "Florida", "New York", "Illinois",
	"Pennsylvania", "Ohio", "Georgia", "North Carolina", "Michigan",
}

var Streets = []string{
	"Main Street", "Oak Avenue", "Maple Drive", "Cedar Lane", "Pine Road",
	"Elm Street", "Washington Boulevard", "Lake View Drive", "Hillcrest Road", "Park Avenue",
}

var Products = []string{
	"Laptop", "Smartphone", "Tablet", "Headphones", "Camera",
	"Smartwatch", "Speaker", "Monitor", "Keyboard", "Mouse",
}

var Categories = []string{
	"Electronics", "Clothing", "Books", "Home & Garden", "Sports",
	"Beauty", "Toys", "Automotive", "Health", "Food",
}

var Companies = []string{
	"Tech Solutions Inc", "Global Systems Ltd", "Innovative Corp", "Digital Dynamics", "Future Tech",
	"Smart Solutions", "Advanced Systems", "Creative Labs", "Prime Industries", "Elite Services",
}

var JobTitles = []string{
	"Software Engineer", "Product Manager", "Data Analyst", "UX Designer", "Sales Executive",
	"Marketing Specialist", "HR Coordinator", "Financial Analyst", "Operations Manager", "Support Engineer",
}

var Departments = []string{
	"Engineering", "Marketing", "Sales", "Finance", "HR", "Operations",
	"Customer Support", "Research", "Legal", "Product", "Design", "Quality Assurance",
}

var Genders = []string{"Male", "Female", "Non-binary"}

var Colors = []string{
	"Red", "Blue", "Green", "Yellow", "Purple", "Orange", "Pink", "Brown",
	"Black", "White", "Gray", "Teal", "Cyan", "Magenta", "Lime",
}

var URLHosts = []string{
	"example.com", "acme.io", "widgets.net", "shopfront.store", "dataplace.org",
	"cloudly.dev", "newsroom.co", "bookhub.com", "travelnow.net", "foodies.app",
}

var URLPaths = []string{
	"", "about", "products", "blog", "contact", "pricing", "docs", "careers",
}

var LoremSentences = []string{
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
	"Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
	"Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris.",
	"Duis aute irure dolor in reprehenderit in voluptate velit esse.",
	"Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia.",
	"Nemo enim ipsam voluptatem quia voluptas sit aspernatur aut odit.",
	"Neque porro quisquam est, qui dolorem ipsum quia dolor sit amet.",
}

var LoremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing",
	"elit", "sed", "eiusmod", "tempor", "incididunt", "labore", "magna",
}
