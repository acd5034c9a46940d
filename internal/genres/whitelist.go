package genres

// whitelist maps a reduced lookup key (accent-stripped, lowercase, a-z only,
// "&" folded to "and") to the canonical genre names it stands for. Most keys
// map to a single genre; a few expand to several, and the multilingual
// aliases at the bottom fold foreign-language store taxonomies into English.
var whitelist = map[string][]string{
	"abstract":            {"Abstract"},
	"acid":                {"Acid"},
	"acidhouse":           {"Acid House"},
	"acoustic":            {"Acoustic"},
	"african":             {"African"},
	"afrobeat":            {"Afrobeat"},
	"alternative":         {"Alternative"},
	"ambient":             {"Ambient"},
	"american":            {"American"},
	"americana":           {"Americana"},
	"anime":               {"Anime"},
	"artrock":             {"Art Rock"},
	"australian":          {"Australian"},
	"avantgarde":          {"Avant Garde"},
	"ballad":              {"Ballad"},
	"baroque":             {"Baroque"},
	"bass":                {"Bass"},
	"beats":               {"Beats"},
	"bigband":             {"Big Band"},
	"blackmetal":          {"Black Metal"},
	"bluegrass":           {"Bluegrass"},
	"blues":               {"Blues"},
	"bluesrock":           {"Blues Rock"},
	"bossanova":           {"Bossa Nova"},
	"brazilian":           {"Brazilian"},
	"breakbeat":           {"Breakbeat"},
	"breakcore":           {"Breakcore"},
	"breaks":              {"Breaks"},
	"british":             {"British"},
	"britpop":             {"Britpop"},
	"canadian":            {"Canadian"},
	"celtic":              {"Celtic"},
	"chambermusic":        {"Chamber Music"},
	"chillout":            {"Chillout"},
	"chillwave":           {"Chillwave"},
	"chiptune":            {"Chiptune"},
	"choral":              {"Choral"},
	"christian":           {"Christian"},
	"christmas":           {"Christmas"},
	"classical":           {"Classical"},
	"classicrock":         {"Classic Rock"},
	"comedy":              {"Comedy"},
	"contemporary":        {"Contemporary"},
	"contemporaryjazz":    {"Contemporary Jazz"},
	"country":             {"Country"},
	"countryrock":         {"Country Rock"},
	"dance":               {"Dance"},
	"dancehall":           {"Dancehall"},
	"darkambient":         {"Dark Ambient"},
	"darkpsytrance":       {"Dark Psytrance"},
	"darkwave":            {"Darkwave"},
	"deathmetal":          {"Death Metal"},
	"deephouse":           {"Deep House"},
	"deeptech":            {"Deep Tech"},
	"disco":               {"Disco"},
	"doommetal":           {"Doom Metal"},
	"doujin":              {"Doujin"},
	"downtempo":           {"Downtempo"},
	"dreampop":            {"Dream Pop"},
	"drone":               {"Drone"},
	"drumbass":            {"Drum & Bass"},
	"drumnbass":           {"Drum & Bass"},
	"drumandbass":         {"Drum & Bass"},
	"dnb":                 {"Drum & Bass"},
	"dub":                 {"Dub"},
	"dubstep":             {"Dubstep"},
	"dubtechno":           {"Dub Techno"},
	"dutch":               {"Dutch"},
	"easylistening":       {"Easy Listening"},
	"ebm":                 {"Ebm"},
	"electro":             {"Electro"},
	"electrohouse":        {"Electro House"},
	"electronic":          {"Electronic"},
	"emo":                 {"Emo"},
	"epic":                {"Epic"},
	"ethereal":            {"Ethereal"},
	"eurohouse":           {"Euro House"},
	"europop":             {"Europop"},
	"experimental":        {"Experimental"},
	"fantasy":             {"Fantasy"},
	"femalevocalist":      {"Female Vocalist"},
	"fieldrecording":      {"Field Recording"},
	"finnish":             {"Finnish"},
	"folk":                {"Folk"},
	"folkrock":            {"Folk Rock"},
	"freeimprovisation":   {"Free Improvisation"},
	"freejazz":            {"Free Jazz"},
	"freelyavailable":     {"Freely Available"},
	"funk":                {"Funk"},
	"fusion":              {"Fusion"},
	"futurejazz":          {"Future Jazz"},
	"gabber":              {"Gabber"},
	"gangsta":             {"Gangsta"},
	"garagehouse":         {"Garage House"},
	"garagerock":          {"Garage Rock"},
	"german":              {"German"},
	"glitch":              {"Glitch"},
	"goatrance":           {"Goa Trance"},
	"gospel":              {"Gospel"},
	"gothicrock":          {"Gothic Rock"},
	"greek":               {"Greek"},
	"grime":               {"Grime"},
	"grindcore":           {"Grindcore"},
	"guitar":              {"Guitar"},
	"happyhardcore":       {"Happy Hardcore"},
	"hardbop":             {"Hard Bop"},
	"hardcoredance":       {"Hardcore Dance"},
	"hardcorepunk":        {"Hardcore Punk"},
	"hardrock":            {"Hard Rock"},
	"hardstyle":           {"Hardstyle"},
	"hardtrance":          {"Hard Trance"},
	"heavymetal":          {"Heavy Metal"},
	"hiphop":              {"Hip Hop"},
	"hiphoprap":           {"Hip Hop", "Rap"},
	"raphiphop":           {"Hip Hop", "Rap"},
	"history":             {"History"},
	"house":               {"House"},
	"idm":                 {"idm"},
	"indie":               {"Indie"},
	"indiedance":          {"Indie Dance"},
	"indiepop":            {"Indie Pop"},
	"indierock":           {"Indie Rock"},
	"industrial":          {"Industrial"},
	"instrumental":        {"Instrumental"},
	"italian":             {"Italian"},
	"italodisco":          {"Italo Disco"},
	"jam":                 {"Jam"},
	"jamband":             {"Jam Band"},
	"japanese":            {"Japanese"},
	"jazz":                {"Jazz"},
	"jazzfunk":            {"Jazz Funk"},
	"jazzrock":            {"Jazz Rock"},
	"jpop":                {"J-Pop"},
	"jungle":              {"Jungle"},
	"korean":              {"Korean"},
	"kpop":                {"K-Pop"},
	"krautrock":           {"Krautrock"},
	"latin":               {"Latin"},
	"leftfield":           {"Leftfield"},
	"library":             {"Library"},
	"lofi":                {"Lo Fi"},
	"loops":               {"Loops"},
	"lounge":              {"Lounge"},
	"mathrock":            {"Math Rock"},
	"melodicdeathmetal":   {"Melodic Death Metal"},
	"metal":               {"Metal"},
	"metalcore":           {"Metalcore"},
	"minimal":             {"Minimal"},
	"minimalhouse":        {"Minimal House"},
	"modernclassical":     {"Modern Classical"},
	"mpb":                 {"mpb"},
	"musiqueconcrete":     {"Musique Concrete"},
	"mystery":             {"Mystery"},
	"neofolk":             {"Neofolk"},
	"newage":              {"New Age"},
	"newwave":             {"New Wave"},
	"newyork":             {"New York"},
	"noise":               {"Noise"},
	"noiserock":           {"Noise Rock"},
	"norwegian":           {"Norwegian"},
	"nudisco":             {"Nu Disco"},
	"numetal":             {"Nu Metal"},
	"opera":               {"Opera"},
	"orchestral":          {"Orchestral"},
	"piano":               {"Piano"},
	"polish":              {"Polish"},
	"pop":                 {"Pop"},
	"poppunk":             {"Pop Punk"},
	"poprap":              {"Pop Rap"},
	"poprock":             {"Pop Rock"},
	"postbop":             {"Post Bop"},
	"posthardcore":        {"Post Hardcore"},
	"postmetal":           {"Post Metal"},
	"postpunk":            {"Post Punk"},
	"postrock":            {"Post Rock"},
	"powermetal":          {"Power Metal"},
	"powerpop":            {"Power Pop"},
	"progressivehouse":    {"Progressive House"},
	"progressivemetal":    {"Progressive Metal"},
	"progressiverock":     {"Progressive Rock"},
	"progressivetrance":   {"Progressive Trance"},
	"psybient":            {"Psybient"},
	"psychedelic":         {"Psychedelic"},
	"psychedelicrock":     {"Psychedelic Rock"},
	"psychill":            {"Psychill"},
	"psytrance":           {"Psytrance"},
	"punk":                {"Punk"},
	"rap":                 {"Rap"},
	"reggae":              {"Reggae"},
	"rhythmnblues":        {"Rhythm & Blues"},
	"rhythmblues":         {"Rhythm & Blues"},
	"randb":               {"Rhythm & Blues"},
	"rnb":                 {"Rhythm & Blues"},
	"rhythmandblues":      {"Rhythm & Blues"},
	"rock":                {"Rock"},
	"rockandroll":         {"Rock & Roll"},
	"romantic":            {"Romantic"},
	"rootsreggae":         {"Roots Reggae"},
	"russian":             {"Russian"},
	"samplepack":          {"Sample Pack"},
	"score":               {"Score"},
	"screamo":             {"Screamo"},
	"shoegaze":            {"Shoegaze"},
	"singersongwriter":    {"Singer & Songwriter"},
	"singerandsongwriter": {"Singer & Songwriter"},
	"ska":                 {"Ska"},
	"sludgemetal":         {"Sludge Metal"},
	"smoothjazz":          {"Smooth Jazz"},
	"softrock":            {"Soft Rock"},
	"soul":                {"Soul"},
	"souljazz":            {"Soul Jazz"},
	"southernrock":        {"Southern Rock"},
	"spacerock":           {"Space Rock"},
	"spanish":             {"Spanish"},
	"spokenword":          {"Spoken Word"},
	"stageandscreen":      {"Stage and Screen"},
	"stonerrock":          {"Stoner Rock"},
	"surf":                {"Surf"},
	"swedish":             {"Swedish"},
	"swing":               {"Swing"},
	"synthpop":            {"Synthpop"},
	"synthwave":           {"Synthwave"},
	"techhouse":           {"Tech House"},
	"technohouse":         {"Techno", "House"},
	"techno":              {"Techno"},
	"thrashmetal":         {"Thrash Metal"},
	"thriller":            {"Thriller"},
	"touhou":              {"Touhou"},
	"trance":              {"Trance"},
	"trap":                {"Trap"},
	"tribal":              {"Tribal"},
	"triphop":             {"Trip Hop"},
	"turkish":             {"Turkish"},
	"ukgarage":            {"UK Garage"},
	"upliftingtrance":     {"Uplifting Trance"},
	"vaporwave":           {"Vaporwave"},
	"videogame":           {"Video Game"},
	"vocal":               {"Vocal"},
	"worldmusic":          {"World Music"},

	// French aliases
	"musiqueelectronique": {"Electronic"},
	"electronique":        {"Electronic"},
	"musiqueclassique":    {"Classical"},
	"rapfrancais":         {"French Rap"},
	"musiquedumonde":      {"World Music"},
	"varietefrancaise":    {"French Pop"},
	"jazzvocal":           {"Vocal Jazz"},

	// German aliases
	"elektronischemusik":   {"Electronic"},
	"klassischemusik":      {"Classical"},
	"zeitgenossischemusik": {"Contemporary"},

	// Spanish aliases
	"musicaelectronica": {"Electronic"},
	"musicaclasica":     {"Classical"},

	// Common variants and mistranslations
	"electronica":         {"Electronic"},
	"indieandalternative": {"Indie"},
	"alternativeandindie": {"Alternative"},
	"randbsoul":           {"R&B"},
}
