package classify

import (
	"slices"
	"strings"
)

// angleRule ties a layer or metric code to the audit observation it triggers.
type angleRule struct {
	layer  string
	metric string
	text   string
}

// Checked in this exact order; only the first two hits make it into the
// rendered angle.
var angleRules = []angleRule{
	{layer: "L7", text: "Human cognitive dependency was the unexamined risk"},
	{metric: "HR", text: "Unverified AI output was carried as completed work: phantom value"},
	{metric: "HHI", text: "Single-vendor concentration created fragility"},
	{layer: "L6", text: "AI was integrated into critical decisions without adequate human override"},
	{metric: "BAI", text: "High beta-AI: productivity collapsed when AI failed"},
	{metric: "CRR", text: "CRR was never measured, so nobody knew if the team could function without AI"},
	{metric: "MY", text: "Gross multiplier looked impressive; risk-adjusted return tells a different story"},
}

// AuditAngle derives a short rationale (at most two sentences) from an
// already-computed classification. It must run after Classify, never before.
func AuditAngle(res Result) string {
	var angles []string
	for _, rule := range angleRules {
		if len(angles) == 2 {
			break
		}
		if rule.layer != "" && slices.Contains(res.Layers, rule.layer) {
			angles = append(angles, rule.text)
		}
		if rule.metric != "" && slices.Contains(res.Metrics, rule.metric) {
			angles = append(angles, rule.text)
		}
	}
	if len(angles) == 0 {
		angles = append(angles, "Layers "+strings.Join(res.Layers, ", ")+" exposed; standard risk assessment missed this")
	}
	return strings.Join(angles, ". ") + "."
}
