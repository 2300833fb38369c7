// Package skills recognizes technology and skill terms in free text using a
// static vocabulary of labelled detectors.
package skills

import (
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout bounds a single detector run on pathological input.
const matchTimeout = 250 * time.Millisecond

// Rule pairs a canonical skill label with the pattern that detects it.
// Patterns are case-insensitive unless they opt out with (?-i:...).
type Rule struct {
	Label    string
	Detector *regexp2.Regexp
}

func rule(label, pattern string) Rule {
	re := regexp2.MustCompile(pattern, regexp2.IgnoreCase|regexp2.Multiline)
	re.MatchTimeout = matchTimeout
	return Rule{Label: label, Detector: re}
}

// vocabulary is read-only after package init. Its order is the order in
// which matched skills are reported.
var vocabulary = []Rule{
	// Languages
	rule("JavaScript", `(?<![.\w])(?:JavaScript|JS|ES6)\b`),
	rule("TypeScript", `\bTypeScript\b`),
	rule("Python", `\bPython\b`),
	rule("Java", `\bJava\b(?!\s*Script)`),
	rule("C++", `(?<!\w)C\+\+`),
	rule("C#", `(?<!\w)C#(?!\w)`),
	// Bare C must not be the start of C++, C#, CSS or any longer word.
	rule("C", `(?-i:(?<![\w.#+-])C(?![\w+#]))`),
	// "Go" is an everyday word, so it only counts next to a list delimiter.
	rule("Go", `(?<!\w)(?:golang\b|(?-i:Go)(?=[ \t]*(?:[,;/|)\]]|$)))`),
	rule("Rust", `(?-i:\bRust\b)`),
	rule("Ruby", `\bRuby\b`),
	rule("PHP", `\bPHP\b`),
	rule("Swift", `(?-i:\bSwift(?:UI)?\b)`),
	rule("Kotlin", `\bKotlin\b`),
	rule("Scala", `\bScala\b`),
	rule("R", `(?-i:(?<![\w.#+-])R)(?:(?=[ \t]*(?:[,;/|)\]]|$))|(?=\s*(?:programming|language|studio)\b))`),
	rule("Dart", `(?-i:\bDart\b)`),
	rule("SQL", `\bSQL\b`),
	rule("HTML", `\bHTML5?\b`),
	rule("CSS", `\bCSS3?\b`),
	rule("Sass", `\b(?:Sass|SCSS)\b`),
	rule("Bash", `\b(?:Bash|Shell\s+Scripting)\b`),

	// Frameworks and libraries
	rule("React", `\bReact(?:\.?js)?\b`),
	rule("Next.js", `\bNext\.?js\b`),
	rule("Vue", `\bVue(?:\.?js)?\b`),
	rule("Angular", `\bAngular(?:JS)?\b`),
	rule("Svelte", `\bSvelte(?:Kit)?\b`),
	rule("Node.js", `\bNode\.?js\b`),
	rule("Express", `(?-i:\bExpress(?:\.?js)?\b)`),
	rule("Django", `\bDjango\b`),
	rule("Flask", `\bFlask\b`),
	rule("FastAPI", `\bFastAPI\b`),
	rule("Spring", `(?-i:\bSpring(?:\s*Boot)?\b)`),
	rule("Ruby on Rails", `\b(?:Ruby\s+on\s+)?Rails\b`),
	rule("Laravel", `\bLaravel\b`),
	rule(".NET", `(?:\bASP|(?<!\w))\.NET\b`),
	rule("Tailwind CSS", `\bTailwind(?:\s*CSS)?\b`),
	rule("Bootstrap", `\bBootstrap\b`),
	rule("jQuery", `\bjQuery\b`),
	rule("Redux", `\bRedux\b`),
	rule("GraphQL", `\bGraphQL\b`),
	rule("REST APIs", `(?-i:\bREST(?:ful)?\b)`),

	// Data stores
	rule("PostgreSQL", `\b(?:PostgreSQL|Postgres)\b`),
	rule("MySQL", `\bMySQL\b`),
	rule("MongoDB", `\bMongo(?:DB)?\b`),
	rule("Redis", `\bRedis\b`),
	rule("SQLite", `\bSQLite\b`),
	rule("Firebase", `\bFirebase\b`),
	rule("Elasticsearch", `\bElastic\s?search\b`),
	rule("DynamoDB", `\bDynamoDB\b`),
	rule("Supabase", `\bSupabase\b`),
	rule("Prisma", `\bPrisma\b`),

	// Cloud and delivery
	rule("AWS", `\b(?:AWS|Amazon\s+Web\s+Services)\b`),
	rule("Azure", `\bAzure\b`),
	rule("GCP", `\b(?:GCP|Google\s+Cloud)\b`),
	rule("Docker", `\bDocker\b`),
	rule("Kubernetes", `\b(?:Kubernetes|K8s)\b`),
	rule("Terraform", `\bTerraform\b`),
	rule("Jenkins", `\bJenkins\b`),
	rule("GitHub Actions", `\bGitHub\s+Actions\b`),
	rule("CI/CD", `\bCI\s*/\s*CD\b`),
	rule("Linux", `\bLinux\b`),
	rule("Git", `\bGit\b`),
	rule("Nginx", `\bNginx\b`),
	rule("Vercel", `\bVercel\b`),
	rule("Netlify", `\bNetlify\b`),
	rule("Heroku", `\bHeroku\b`),

	// Data and ML
	rule("TensorFlow", `\bTensorFlow\b`),
	rule("PyTorch", `\bPyTorch\b`),
	rule("Pandas", `\bPandas\b`),
	rule("NumPy", `\bNumPy\b`),
	rule("scikit-learn", `\b(?:scikit-learn|sklearn)\b`),
	rule("Machine Learning", `\bMachine\s+Learning\b`),
	rule("OpenCV", `\bOpenCV\b`),

	// Mobile
	rule("React Native", `\bReact\s+Native\b`),
	rule("Flutter", `\bFlutter\b`),
	rule("Android", `\bAndroid\b`),
	rule("iOS", `(?<!\w)iOS\b`),

	// Design and tooling
	rule("Figma", `\bFigma\b`),
	rule("Adobe XD", `\bAdobe\s+XD\b`),
	rule("Photoshop", `\bPhotoshop\b`),
	rule("Illustrator", `\bIllustrator\b`),
	rule("Jest", `\bJest\b`),
	rule("Cypress", `\bCypress\b`),
	rule("Webpack", `\bWebpack\b`),
	rule("Vite", `\bVite\b`),
}

// Vocabulary returns a copy of the rule table in match order.
func Vocabulary() []Rule {
	rules := make([]Rule, len(vocabulary))
	copy(rules, vocabulary)
	return rules
}
