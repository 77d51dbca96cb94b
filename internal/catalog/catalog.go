// Package catalog holds the static pattern tables that drive risk
// classification: framework layers, metrics, severity tiers and industries.
// A Catalog is built once at startup and never mutated; category order is
// part of the contract because severity and industry use first-match-wins.
package catalog

import "regexp"

// Severity tiers, highest first. Low carries no patterns: it is the
// fallback when no other tier matches.
const (
	SeverityCritical = "Critical"
	SeverityHigh     = "High"
	SeverityMedium   = "Medium"
	SeverityLow      = "Low"
)

// Severities lists all tiers in rank order.
var Severities = []string{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// SeverityRank maps a tier to its sort rank (Critical=0 .. Low=3).
// Unknown tiers sort last.
func SeverityRank(severity string) int {
	for i, s := range Severities {
		if s == severity {
			return i
		}
	}
	return len(Severities)
}

// DefaultIndustry is assigned when no industry category matches.
const DefaultIndustry = "General/Cross-Industry"

// Default fallback codes when no layer or metric pattern matches.
const (
	DefaultLayer  = "L4"
	DefaultMetric = "MG"
)

// Category is one classification bucket: a code, a human-readable name and
// an ordered list of patterns. A text belongs to the category as soon as any
// one pattern matches.
type Category struct {
	Code     string
	Name     string
	Patterns []*regexp.Regexp
}

// Matches reports whether any of the category's patterns hits the text.
// Text is expected to be lower-cased by the caller.
func (c Category) Matches(text string) bool {
	for _, p := range c.Patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// Catalog bundles all pattern tables. Slices are ordered; the order decides
// tie-breaks for severity and industry and the label order for layers and
// metrics.
type Catalog struct {
	Layers     []Category // 7 framework layers, L1..L7
	Metrics    []Category // 6 framework metrics
	Severities []Category // Critical, High, Medium (Low is implicit)
	Industries []Category // 10 industry sectors
}

func compile(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(p))
	}
	return res
}

// Default builds the built-in catalog. Callers should build it once and pass
// it around; tests substitute smaller catalogs.
func Default() *Catalog {
	return &Catalog{
		Layers: []Category{
			{Code: "L1", Name: "Energy & Compute", Patterns: compile(
				`energy\s+consumption`, `power\s+grid`, `data\s+cent(er|re)\s+(power|energy|outage)`,
				`gpu\s+shortage`, `compute\s+cost`, `carbon\s+footprint\s+ai`,
				`electricity\s+demand\s+ai`, `cooling\s+(fail|cost)`,
			)},
			{Code: "L2", Name: "Infrastructure", Patterns: compile(
				`cloud\s+outage`, `aws\s+(outage|down)`, `azure\s+(outage|down)`,
				`gcp\s+(outage|down)`, `gpu\s+supply`, `chip\s+shortage`,
				`tsmc`, `nvidia\s+(shortage|supply|dominan)`, `infrastructure\s+fail`,
				`server\s+(crash|outage|fail)`, `api\s+(outage|down)`,
			)},
			{Code: "L3", Name: "Architecture", Patterns: compile(
				`transformer\s+(limit|plateau|bottleneck)`, `scaling\s+law\s+(plateau|limit|diminish)`,
				`architecture\s+(flaw|limit)`, `model\s+collapse`,
				`training\s+on\s+(ai|synthetic)\s+data`, `paradigm\s+(shift|lock)`,
			)},
			{Code: "L4", Name: "Models", Patterns: compile(
				`hallucin`, `confabul`, `fabricat(ed|ing)\s+(information|citation|reference|fact)`,
				`bias(ed)?\s+(output|model|algorithm|training\s+data)`,
				`incorrect\s+(\w+\s+)?(information|answer|response|advice)`,
				`false\s+(information|claim|answer)`, `misinformation`,
				`wrong\s+(\w+\s+)?(answer|information|advice)`, `inaccura(te|cy)`,
				`ai\s+(error|mistake|blunder|gaffe)`, `deepfake`,
				`alignment\s+(fail|problem)`, `jailbreak`,
			)},
			{Code: "L5", Name: "Application", Patterns: compile(
				`data\s+(leak|breach|expos).*\b(ai|chatbot|llm|gpt|claude|gemini)\b`,
				`(ai|chatbot|llm|gpt).*data\s+(leak|breach|expos)`,
				`prompt\s+injection`, `api\s+deprecat`, `vendor\s+lock`,
				`chatbot\s+(fail|error|wrong|mislead|sued|lawsuit)`,
				`ai\s+tool\s+(fail|error|bug|crash)`, `shadow\s+ai`,
				`(copyright|ip)\s+(infring|violat|lawsuit).*ai`,
			)},
			{Code: "L6", Name: "Integration", Patterns: compile(
				`autonom(ous|y)\s+(vehicle|car|driv|crash|accident)`,
				`self.driving\s+(crash|accident|fail|recall)`,
				`ai\s+(medical|healthcare|diagnos|treatment)\s*(error|fail|wrong|harm|death)`,
				`(ai|chatbot).*(wrong|false|harmful|bad)\s+(medical|health|legal|financial)\s+advice`,
				`algorithm(ic)?\s+(deny|denial|reject|discriminat|bias)`,
				`ai\s+(hiring|recruit|hr)\s*(bias|discriminat|lawsuit|fail)`,
				`ai\s+weapon`, `drone\s+(strike|attack|fail).*ai`,
				`robotic\s+(surgery|procedure)\s*(fail|error|harm)`,
				`cascading\s+fail`, `liability\s+gap`,
			)},
			{Code: "L7", Name: "Human: Cognitive & Emotional", Patterns: compile(
				`(ai|chatbot)\s*(dependency|addict|attachment|relian)`,
				`deskill`, `cognitive\s+(atrophy|decline|offload|dependency)`,
				`(replac|eliminat|lay\s*off|fire|cut).*\b(worker|employee|staff|job|human)\b.*\bai\b`,
				`\bai\b.*(replac|eliminat|lay\s*off|fire|cut).*\b(worker|employee|staff|job|human)\b`,
				`(mental\s+health|suicide|self.harm).*\b(ai|chatbot)\b`,
				`\b(ai|chatbot)\b.*(mental\s+health|suicide|self.harm)`,
				`emotional\s*(support|companion|relationship).*ai`,
				`ai\s+companion`, `trust\s+(miscalibr|erosion|crisis).*ai`,
				`human\s+oversight\s*(fail|lack|absent)`,
				`ai\s+replace.*human\s+judgment`,
				`over.?relian(ce)?.*\bai\b`,
			)},
		},
		Metrics: []Category{
			{Code: "MY", Name: "Medha Yield (risk-adjusted value per AI spend)", Patterns: compile(
				`roi\b`, `cost\s+saving`, `productivity`, `efficien`, `value`, `spend`,
			)},
			{Code: "CRR", Name: "Cognitive Reserve Ratio (% output achievable without AI)", Patterns: compile(
				`deskill`, `without\s+ai`, `human\s+(capability|skill|competenc)`, `cognitive\s+reserve`,
			)},
			{Code: "BAI", Name: "AI Dependency Beta (productivity sensitivity to AI availability)", Patterns: compile(
				`dependen`, `outage\s+impact`, `can.?t\s+function\s+without`, `single\s+point\s+of\s+fail`,
			)},
			{Code: "HR", Name: "Hallucination Rate (% unverified AI output carried as completed)", Patterns: compile(
				`hallucin`, `unverified`, `fabricat`, `incorrect`, `inaccura`, `wrong\s+answer`,
			)},
			{Code: "HHI", Name: "Vendor HHI (concentration index for AI tool stack)", Patterns: compile(
				`vendor\s+(lock|concentrat|single)`, `single\s+provider`, `(aws|azure|openai|google)\s+only`,
			)},
			{Code: "MG", Name: "Medha Grade (composite AAA to CCC)", Patterns: compile(
				`systemic`, `multiple\s+(fail|risk|layer)`, `compound`, `cascad`,
			)},
		},
		Severities: []Category{
			{Code: SeverityCritical, Name: SeverityCritical, Patterns: compile(
				`death`, `killed`, `fatal`, `suicide`, `class.?action`, `billion`,
			)},
			{Code: SeverityHigh, Name: SeverityHigh, Patterns: compile(
				`lawsuit`, `sued`, `recall`, `banned`, `fired`, `million\s+dollar`, `million\s+loss`,
			)},
			{Code: SeverityMedium, Name: SeverityMedium, Patterns: compile(
				`error`, `mistake`, `wrong`, `inaccura`, `mislead`, `fail`,
			)},
		},
		Industries: []Category{
			{Code: "Healthcare", Name: "Healthcare", Patterns: compile(
				`health`, `medical`, `hospital`, `patient`, `pharma`, `drug`, `medicare`, `diagnos`,
			)},
			{Code: "Finance", Name: "Finance", Patterns: compile(
				`bank`, `financ`, `insur`, `trading`, `invest`, `fintech`, `payment`, `loan`,
			)},
			{Code: "Automotive", Name: "Automotive", Patterns: compile(
				`self.driv`, `autonom.*vehicle`, `tesla`, `waymo`, `cruise`, `car\s+crash`,
			)},
			{Code: "Legal", Name: "Legal", Patterns: compile(
				`lawyer`, `legal`, `law\s+firm`, `court`, `judge`, `attorney`,
			)},
			{Code: "Education", Name: "Education", Patterns: compile(
				`school`, `student`, `university`, `educat`, `academic`, `cheating`,
			)},
			{Code: "Retail", Name: "Retail", Patterns: compile(
				`retail`, `e.?commerce`, `shopping`, `consumer`, `customer\s+service`,
			)},
			{Code: "Media", Name: "Media", Patterns: compile(
				`news`, `journal`, `publish`, `media`, `content\s+moderat`,
			)},
			{Code: "Tech", Name: "Tech", Patterns: compile(
				`software`, `saas`, `cloud`, `platform`, `developer`, `startup`,
			)},
			{Code: "Government", Name: "Government", Patterns: compile(
				`government`, `public\s+sector`, `polic`, `military`, `defense`, `regulat`,
			)},
			{Code: "HR/Recruitment", Name: "HR/Recruitment", Patterns: compile(
				`hiring`, `recruit`, `resume`, `hr\b`, `workforce`, `employ`,
			)},
		},
	}
}
