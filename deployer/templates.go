package deployer

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// Template registry
////////////////////////////////////////////////////////////////////////////////

// QuestionOption is one selectable answer of a discovery question. Impact is
// the short consequence line the wizard shows next to the option.
type QuestionOption struct {
	Value  string `json:"value" yaml:"value"`
	Label  string `json:"label" yaml:"label"`
	Impact string `json:"impact" yaml:"impact"`
}

// DiscoveryQuestion is asked during the template journey; answers feed the
// variation matcher.
type DiscoveryQuestion struct {
	ID      string           `json:"id" yaml:"id"`
	Prompt  string           `json:"prompt" yaml:"prompt"`
	Options []QuestionOption `json:"options" yaml:"options"`
}

// RiskLevel grades a self-assessment answer.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// AssessmentOption is one self-assessment answer with its risk grade and the
// feedback line surfaced to the user. Never blocks progression.
type AssessmentOption struct {
	Value    string    `json:"value" yaml:"value"`
	Label    string    `json:"label" yaml:"label"`
	Risk     RiskLevel `json:"riskLevel" yaml:"riskLevel"`
	Feedback string    `json:"feedback" yaml:"feedback"`
}

// AssessmentQuestion is one entry of a template's self-assessment list.
type AssessmentQuestion struct {
	ID      string             `json:"id" yaml:"id"`
	Prompt  string             `json:"prompt" yaml:"prompt"`
	Options []AssessmentOption `json:"options" yaml:"options"`
}

// VariationSettings is the patch a variation overlays onto the template
// defaults. Only non-nil fields apply. The class list is never patched
// directly; it is regenerated from the resulting democracy weight.
type VariationSettings struct {
	DemocracyWeight     *int        `json:"democracyWeight,omitempty" yaml:"democracyWeight,omitempty"`
	ParticipationWeight *int        `json:"participationWeight,omitempty" yaml:"participationWeight,omitempty"`
	HybridQuorum        *int        `json:"hybridQuorum,omitempty" yaml:"hybridQuorum,omitempty"`
	DDQuorum            *int        `json:"ddQuorum,omitempty" yaml:"ddQuorum,omitempty"`
	VotingMode          *VotingMode `json:"votingMode,omitempty" yaml:"votingMode,omitempty"`
	Quadratic           *bool       `json:"quadratic,omitempty" yaml:"quadratic,omitempty"`
	EducationHub        *bool       `json:"educationHub,omitempty" yaml:"educationHub,omitempty"`
	ElectionHub         *bool       `json:"electionHub,omitempty" yaml:"electionHub,omitempty"`
}

// Variation is a named overlay on the template defaults. MatchConditions maps
// a question id to the accepted values; a one-element list is the single-value
// form. Reasoning is the human explanation shown when the variation wins.
type Variation struct {
	ID              string              `json:"id" yaml:"id"`
	Name            string              `json:"name" yaml:"name"`
	MatchConditions map[string][]string `json:"matchConditions" yaml:"matchConditions"`
	Settings        VariationSettings   `json:"settings" yaml:"settings"`
	Reasoning       string              `json:"reasoning" yaml:"reasoning"`
}

// GrowthStage, Pitfall and Concept are informational payloads the core passes
// through untouched.
type GrowthStage struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Signals     []string `json:"signals" yaml:"signals"`
}

type Pitfall struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Avoidance   string `json:"avoidance" yaml:"avoidance"`
}

type Concept struct {
	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`
}

// Template is one declarative catalog entry. Registry copies are handed out
// as deep clones with fresh role/class identities, so callers can mutate
// freely without contaminating the catalog.
type Template struct {
	ID             string               `json:"id" yaml:"id"`
	Name           string               `json:"name" yaml:"name"`
	Tagline        string               `json:"tagline" yaml:"tagline"`
	Description    string               `json:"description" yaml:"description"`
	PhilosophyHint int                  `json:"philosophyHint" yaml:"philosophyHint"`
	Roles          []Role               `json:"roles" yaml:"roles"`
	Permissions    PermissionSets       `json:"permissions" yaml:"permissions"`
	Voting         VotingConfig         `json:"voting" yaml:"voting"`
	Features       Features             `json:"features" yaml:"features"`
	Questions      []DiscoveryQuestion  `json:"questions" yaml:"questions"`
	Variations     []Variation          `json:"variations" yaml:"variations"`
	SelfAssessment []AssessmentQuestion `json:"selfAssessment" yaml:"selfAssessment"`
	GrowthPath     []GrowthStage        `json:"growthPath" yaml:"growthPath"`
	Pitfalls       []Pitfall            `json:"pitfalls" yaml:"pitfalls"`
	Concepts       []Concept            `json:"concepts" yaml:"concepts"`
}

// registry is the process-wide catalog: initialised once below, never mutated
// afterwards. Accessors clone; nothing hands out the backing pointers.
var registry = []*Template{
	workerCoopTemplate(),
	communityOrgTemplate(),
	startupDAOTemplate(),
	creatorCollectiveTemplate(),
}

// TemplateIDs lists the catalog ids in declaration order.
func TemplateIDs() []string {
	out := make([]string, len(registry))
	for i, t := range registry {
		out[i] = t.ID
	}
	return out
}

// GetTemplate returns a deep clone of the catalog entry with fresh opaque ids
// on every role and voting class.
func GetTemplate(id string) (*Template, error) {
	for _, t := range registry {
		if t.ID == id {
			return cloneTemplate(t), nil
		}
	}
	return nil, errf(KindUnknownTemplate, "unknown template %q", id)
}

// cloneTemplate deep-copies a template and re-identifies roles and classes.
func cloneTemplate(t *Template) *Template {
	out := *t

	out.Roles = make([]Role, len(t.Roles))
	for i, r := range t.Roles {
		nr := r.clone()
		nr.ID = newID()
		out.Roles[i] = nr
	}

	out.Permissions = t.Permissions.clone()
	out.Voting = t.Voting.clone()
	for i := range out.Voting.Classes {
		out.Voting.Classes[i].ID = newID()
	}

	out.Questions = make([]DiscoveryQuestion, len(t.Questions))
	for i, q := range t.Questions {
		nq := q
		nq.Options = append([]QuestionOption(nil), q.Options...)
		out.Questions[i] = nq
	}

	out.Variations = make([]Variation, len(t.Variations))
	for i, v := range t.Variations {
		nv := v
		nv.MatchConditions = make(map[string][]string, len(v.MatchConditions))
		for k, vals := range v.MatchConditions {
			nv.MatchConditions[k] = append([]string(nil), vals...)
		}
		out.Variations[i] = nv
	}

	out.SelfAssessment = make([]AssessmentQuestion, len(t.SelfAssessment))
	for i, q := range t.SelfAssessment {
		nq := q
		nq.Options = append([]AssessmentOption(nil), q.Options...)
		out.SelfAssessment[i] = nq
	}

	out.GrowthPath = make([]GrowthStage, len(t.GrowthPath))
	for i, g := range t.GrowthPath {
		ng := g
		ng.Signals = append([]string(nil), g.Signals...)
		out.GrowthPath[i] = ng
	}
	out.Pitfalls = append([]Pitfall(nil), t.Pitfalls...)
	out.Concepts = append([]Concept(nil), t.Concepts...)
	return &out
}

// ParseTemplateYAML decodes an external template overlay document. Parsed
// templates pass through the same clone/normalize step as catalog entries, so
// roles and classes come out with fresh ids and clean permission sets.
func ParseTemplateYAML(data []byte) (*Template, error) {
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse template yaml: %w", err)
	}
	if t.ID == "" {
		return nil, errf(KindBlankField, "template yaml is missing an id")
	}
	out := cloneTemplate(&t)
	for _, k := range AllPermissionKeys {
		out.Permissions = out.Permissions.withRoles(k, out.Permissions.Roles(k))
	}
	return out, nil
}
