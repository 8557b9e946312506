package catalog

// countries is the embedded catalog. Canonical names are Portuguese and
// must be unique. Figures are point-in-time reference values: population
// counts, UNDP HDI, and UNODC homicide rates per 100k.
var countries = []Country{
	{
		Name: "Brasil", NameEN: "Brazil",
		Population: 214_300_000, HDI: 0.754, HomicideRate: 22.4,
		Continent: "América do Sul", ContinentEN: "South America",
		FlagEmoji: "🇧🇷", Language: "Português", LanguageEN: "Portuguese",
		FamousPlayer: "Pelé", IndependenceYear: "1822",
	},
	{
		Name: "México", NameEN: "Mexico",
		Population: 128_900_000, HDI: 0.758, HomicideRate: 28.0,
		Continent: "América do Norte", ContinentEN: "North America",
		FlagEmoji: "🇲🇽", Language: "Espanhol", LanguageEN: "Spanish",
		FamousPlayer: "Hugo Sánchez", IndependenceYear: "1810",
	},
	{
		Name: "Estados Unidos", NameEN: "United States",
		Population: 331_900_000, HDI: 0.921, HomicideRate: 6.5,
		Continent: "América do Norte", ContinentEN: "North America",
		FlagEmoji: "🇺🇸", Language: "Inglês", LanguageEN: "English",
		FamousPlayer: "Michael Jordan", IndependenceYear: "1776",
	},
	{
		Name: "Argentina", NameEN: "Argentina",
		Population: 45_800_000, HDI: 0.842, HomicideRate: 5.3,
		Continent: "América do Sul", ContinentEN: "South America",
		FlagEmoji: "🇦🇷", Language: "Espanhol", LanguageEN: "Spanish",
		FamousPlayer: "Lionel Messi", IndependenceYear: "1816",
	},
	{
		Name: "Japão", NameEN: "Japan",
		Population: 125_700_000, HDI: 0.925, HomicideRate: 0.2,
		Continent: "Ásia", ContinentEN: "Asia",
		FlagEmoji: "🇯🇵", Language: "Japonês", LanguageEN: "Japanese",
		FamousPlayer: "Shohei Ohtani",
		IndependenceYear: "660 a.C.", IndependenceYearEN: "660 BC",
	},
	{
		Name: "Alemanha", NameEN: "Germany",
		Population: 83_200_000, HDI: 0.942, HomicideRate: 0.8,
		Continent: "Europa", ContinentEN: "Europe",
		FlagEmoji: "🇩🇪", Language: "Alemão", LanguageEN: "German",
		FamousPlayer: "Franz Beckenbauer", IndependenceYear: "1871",
	},
	{
		Name: "França", NameEN: "France",
		Population: 67_800_000, HDI: 0.903, HomicideRate: 1.1,
		Continent: "Europa", ContinentEN: "Europe",
		FlagEmoji: "🇫🇷", Language: "Francês", LanguageEN: "French",
		FamousPlayer: "Zinédine Zidane", IndependenceYear: "843",
	},
	{
		Name: "Itália", NameEN: "Italy",
		Population: 59_100_000, HDI: 0.895, HomicideRate: 0.5,
		Continent: "Europa", ContinentEN: "Europe",
		FlagEmoji: "🇮🇹", Language: "Italiano", LanguageEN: "Italian",
		FamousPlayer: "Paolo Maldini", IndependenceYear: "1861",
	},
	{
		Name: "Espanha", NameEN: "Spain",
		Population: 47_400_000, HDI: 0.905, HomicideRate: 0.6,
		Continent: "Europa", ContinentEN: "Europe",
		FlagEmoji: "🇪🇸", Language: "Espanhol", LanguageEN: "Spanish",
		FamousPlayer: "Rafael Nadal", IndependenceYear: "1479",
	},
	{
		Name: "Portugal", NameEN: "Portugal",
		Population: 10_300_000, HDI: 0.866, HomicideRate: 0.7,
		Continent: "Europa", ContinentEN: "Europe",
		FlagEmoji: "🇵🇹", Language: "Português", LanguageEN: "Portuguese",
		FamousPlayer: "Cristiano Ronaldo", IndependenceYear: "1143",
	},
	{
		Name: "Reino Unido", NameEN: "United Kingdom",
		Population: 67_300_000, HDI: 0.929, HomicideRate: 1.1,
		Continent: "Europa", ContinentEN: "Europe",
		FlagEmoji: "🇬🇧", Language: "Inglês", LanguageEN: "English",
		FamousPlayer: "Lewis Hamilton", IndependenceYear: "1707",
	},
	{
		Name: "China", NameEN: "China",
		Population: 1_412_000_000, HDI: 0.768, HomicideRate: 0.5,
		Continent: "Ásia", ContinentEN: "Asia",
		FlagEmoji: "🇨🇳", Language: "Mandarim", LanguageEN: "Mandarin",
		FamousPlayer: "Yao Ming",
		IndependenceYear: "Antiguidade", IndependenceYearEN: "Antiquity",
	},
	{
		Name: "Índia", NameEN: "India",
		Population: 1_408_000_000, HDI: 0.633, HomicideRate: 2.9,
		Continent: "Ásia", ContinentEN: "Asia",
		FlagEmoji: "🇮🇳", Language: "Hindi", LanguageEN: "Hindi",
		FamousPlayer: "Sachin Tendulkar", IndependenceYear: "1947",
	},
	{
		Name: "Rússia", NameEN: "Russia",
		Population: 143_400_000, HDI: 0.822, HomicideRate: 7.3,
		Continent: "Europa", ContinentEN: "Europe",
		FlagEmoji: "🇷🇺", Language: "Russo", LanguageEN: "Russian",
		FamousPlayer: "Alexander Ovechkin", IndependenceYear: "1991",
	},
	{
		Name: "Canadá", NameEN: "Canada",
		Population: 38_200_000, HDI: 0.936, HomicideRate: 2.0,
		Continent: "América do Norte", ContinentEN: "North America",
		FlagEmoji: "🇨🇦", Language: "Inglês e Francês", LanguageEN: "English and French",
		FamousPlayer: "Wayne Gretzky", IndependenceYear: "1867",
	},
	{
		Name: "Austrália", NameEN: "Australia",
		Population: 25_700_000, HDI: 0.951, HomicideRate: 0.9,
		Continent: "Oceania", ContinentEN: "Oceania",
		FlagEmoji: "🇦🇺", Language: "Inglês", LanguageEN: "English",
		FamousPlayer: "Ian Thorpe", IndependenceYear: "1901",
	},
	{
		Name: "Egito", NameEN: "Egypt",
		Population: 104_300_000, HDI: 0.731, HomicideRate: 2.5,
		Continent: "África", ContinentEN: "Africa",
		FlagEmoji: "🇪🇬", Language: "Árabe", LanguageEN: "Arabic",
		FamousPlayer: "Mohamed Salah",
		IndependenceYear: "Antiguidade", IndependenceYearEN: "Antiquity",
	},
	{
		Name: "África do Sul", NameEN: "South Africa",
		Population: 60_000_000, HDI: 0.713, HomicideRate: 33.5,
		Continent: "África", ContinentEN: "Africa",
		FlagEmoji: "🇿🇦", Language: "Inglês e Zulu", LanguageEN: "English and Zulu",
		FamousPlayer: "Siya Kolisi", IndependenceYear: "1910",
	},
	{
		Name: "Nigéria", NameEN: "Nigeria",
		Population: 213_400_000, HDI: 0.535, HomicideRate: 21.7,
		Continent: "África", ContinentEN: "Africa",
		FlagEmoji: "🇳🇬", Language: "Inglês", LanguageEN: "English",
		FamousPlayer: "Jay-Jay Okocha", IndependenceYear: "1960",
	},
	{
		Name: "Colômbia", NameEN: "Colombia",
		Population: 51_500_000, HDI: 0.752, HomicideRate: 27.5,
		Continent: "América do Sul", ContinentEN: "South America",
		FlagEmoji: "🇨🇴", Language: "Espanhol", LanguageEN: "Spanish",
		FamousPlayer: "Radamel Falcao", IndependenceYear: "1810",
	},
	{
		Name: "Chile", NameEN: "Chile",
		Population: 19_500_000, HDI: 0.855, HomicideRate: 4.6,
		Continent: "América do Sul", ContinentEN: "South America",
		FlagEmoji: "🇨🇱", Language: "Espanhol", LanguageEN: "Spanish",
		FamousPlayer: "Alexis Sánchez", IndependenceYear: "1818",
	},
	{
		Name: "Peru", NameEN: "Peru",
		Population: 33_700_000, HDI: 0.762, HomicideRate: 7.7,
		Continent: "América do Sul", ContinentEN: "South America",
		FlagEmoji: "🇵🇪", Language: "Espanhol", LanguageEN: "Spanish",
		FamousPlayer: "Paolo Guerrero", IndependenceYear: "1821",
	},
	{
		Name: "Grécia", NameEN: "Greece",
		Population: 10_600_000, HDI: 0.887, HomicideRate: 0.9,
		Continent: "Europa", ContinentEN: "Europe",
		FlagEmoji: "🇬🇷", Language: "Grego", LanguageEN: "Greek",
		FamousPlayer: "Giannis Antetokounmpo",
		IndependenceYear: "Antiguidade", IndependenceYearEN: "Antiquity",
	},
	{
		Name: "Coreia do Sul", NameEN: "South Korea",
		Population: 51_700_000, HDI: 0.925, HomicideRate: 0.6,
		Continent: "Ásia", ContinentEN: "Asia",
		FlagEmoji: "🇰🇷", Language: "Coreano", LanguageEN: "Korean",
		FamousPlayer: "Son Heung-min", IndependenceYear: "1948",
	},
	{
		Name: "Uruguai", NameEN: "Uruguay",
		Population: 3_500_000, HDI: 0.809, HomicideRate: 9.7,
		Continent: "América do Sul", ContinentEN: "South America",
		FlagEmoji: "🇺🇾", Language: "Espanhol", LanguageEN: "Spanish",
		FamousPlayer: "Luis Suárez", IndependenceYear: "1825",
	},
	{
		Name: "Suécia", NameEN: "Sweden",
		Population: 10_400_000, HDI: 0.947, HomicideRate: 1.2,
		Continent: "Europa", ContinentEN: "Europe",
		FlagEmoji: "🇸🇪", Language: "Sueco", LanguageEN: "Swedish",
		FamousPlayer: "Zlatan Ibrahimović", IndependenceYear: "1523",
	},
}
