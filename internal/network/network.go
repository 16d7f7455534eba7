package network

import (
	"strings"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/textutil"
)

const (
	maxCompanies      = 8
	maxRegulators     = 5
	maxEvidence       = 3
	strengthPerMatch  = 20
	companyNodeSize   = 20
	regulatorNodeSize = 25
)

var relationRanks = map[model.RelationLabel]int{
	model.RelationMonitoring:    0,
	model.RelationRegulation:    1,
	model.RelationEnforcement:   2,
	model.RelationInvestigation: 3,
}

var (
	investigationTerms = []string{"investigation", "probe", "scrutiny"}
	enforcementTerms   = []string{"fine", "penalty", "sanction"}
	regulationTerms    = []string{"regulation", "compliance", "oversight"}
)

// Build constructs the co-occurrence graph and the per-company and
// per-regulator aggregates from the document, the supplied entity lists, and
// the detections. Missing entities yield an empty network, never an error.
func Build(text string, entities model.Entities, detections []model.RiskDetection) model.NetworkSummary {
	companies := capList(entities.Companies, maxCompanies)
	regulators := capList(entities.RegulatoryBodies, maxRegulators)
	sentences := textutil.SplitSentences(text)

	g := newGraph()
	g.addRiskNodes(detections)
	g.addEntityNodes(companies, regulators)
	g.linkCoOccurrences(sentences, companies, regulators, detections)

	return model.NetworkSummary{
		Nodes:      g.nodes,
		Edges:      g.edgeList(),
		Density:    g.density(),
		Companies:  companyExposures(sentences, companies, detections),
		Regulators: regulatorProfiles(sentences, regulators, companies),
		Financials: companyFinancials(sentences, companies, entities.FinancialAmounts),
	}
}

func capList(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

// graph is an append-only node/edge arena. Edges live in a map keyed by
// "source|target" so repeated co-occurrence is an O(1) weight increment.
type graph struct {
	nodes     []model.NetworkNode
	edges     map[string]*model.RelationshipEdge
	edgeOrder []string
}

func newGraph() *graph {
	return &graph{edges: make(map[string]*model.RelationshipEdge)}
}

func (g *graph) addRiskNodes(detections []model.RiskDetection) {
	for _, det := range detections {
		g.nodes = append(g.nodes, model.NetworkNode{
			ID:    string(det.Category),
			Type:  model.NodeRisk,
			Score: det.Score,
			Size:  det.Score / 10,
			Color: det.Color,
		})
	}
}

func (g *graph) addEntityNodes(companies, regulators []string) {
	for _, c := range companies {
		g.nodes = append(g.nodes, model.NetworkNode{ID: c, Type: model.NodeCompany, Size: companyNodeSize, Color: "#4ECDC4"})
	}
	for _, r := range regulators {
		g.nodes = append(g.nodes, model.NetworkNode{ID: r, Type: model.NodeRegulator, Size: regulatorNodeSize, Color: "#FF6B6B"})
	}
}

func (g *graph) bump(source, target string, kind model.EdgeType) {
	key := source + "|" + target
	if e, ok := g.edges[key]; ok {
		e.Weight++
		return
	}
	g.edges[key] = &model.RelationshipEdge{Source: source, Target: target, Type: kind, Weight: 1}
	g.edgeOrder = append(g.edgeOrder, key)
}

func (g *graph) linkCoOccurrences(sentences, companies, regulators []string, detections []model.RiskDetection) {
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		for _, company := range companies {
			if !strings.Contains(sentence, company) {
				continue
			}
			for _, det := range detections {
				if containsAnyKeyword(lower, det.KeywordsFound) {
					g.bump(company, string(det.Category), model.EdgeCompanyRisk)
				}
			}
			for _, regulator := range regulators {
				if strings.Contains(sentence, regulator) {
					g.bump(company, regulator, model.EdgeRegulatoryOversight)
				}
			}
		}
	}
}

func (g *graph) edgeList() []model.RelationshipEdge {
	list := make([]model.RelationshipEdge, 0, len(g.edgeOrder))
	for _, key := range g.edgeOrder {
		list = append(list, *g.edges[key])
	}
	return list
}

// density is edges over the maximum possible directed edges; 0 when the
// graph has fewer than 2 nodes.
func (g *graph) density() float64 {
	n := len(g.nodes)
	if n < 2 {
		return 0
	}
	return float64(len(g.edgeOrder)) / float64(n*(n-1))
}

func containsAnyKeyword(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func companyExposures(sentences, companies []string, detections []model.RiskDetection) []model.CompanyExposure {
	var exposures []model.CompanyExposure
	for _, company := range companies {
		var links []model.CompanyRiskLink
		for _, det := range detections {
			var evidence []string
			for _, sentence := range sentences {
				if strings.Contains(sentence, company) && containsAnyKeyword(strings.ToLower(sentence), det.KeywordsFound) {
					evidence = append(evidence, sentence)
				}
			}
			if len(evidence) == 0 {
				continue
			}
			strength := float64(len(evidence) * strengthPerMatch)
			if strength > 100 {
				strength = 100
			}
			links = append(links, model.CompanyRiskLink{
				Category:      det.Category,
				RiskScore:     det.Score,
				Strength:      strength,
				CoOccurrences: len(evidence),
				Evidence:      trimEvidence(evidence),
			})
		}
		if len(links) == 0 {
			continue
		}

		exposure := 0.0
		primary := links[0]
		for _, link := range links {
			exposure += link.RiskScore * link.Strength / 100
			if link.Strength > primary.Strength {
				primary = link
			}
		}
		exposure /= float64(len(links))

		exposures = append(exposures, model.CompanyExposure{
			Company:       company,
			Risks:         links,
			TotalExposure: exposure,
			PrimaryRisk:   primary.Category,
		})
	}
	return exposures
}

func regulatorProfiles(sentences, regulators, companies []string) []model.RegulatorProfile {
	var profiles []model.RegulatorProfile
	for _, regulator := range regulators {
		var actions []model.RegulatorAction
		for _, company := range companies {
			var joint []string
			for _, sentence := range sentences {
				if strings.Contains(sentence, regulator) && strings.Contains(sentence, company) {
					joint = append(joint, sentence)
				}
			}
			if len(joint) == 0 {
				continue
			}

			relation := model.RelationMonitoring
			for _, sentence := range joint {
				if r := classifyRelation(sentence); relationRanks[r] > relationRanks[relation] {
					relation = r
				}
			}

			var amounts []string
			seen := make(map[string]bool)
			for _, sentence := range joint {
				for _, a := range amountRe.FindAllString(sentence, -1) {
					if !seen[a] {
						seen[a] = true
						amounts = append(amounts, a)
					}
				}
			}
			if len(amounts) > maxEvidence {
				amounts = amounts[:maxEvidence]
			}

			actions = append(actions, model.RegulatorAction{
				Company:      company,
				Relationship: relation,
				Confidence:   relationConfidence(relation),
				Interactions: len(joint),
				Amounts:      amounts,
				Evidence:     trimEvidence(joint),
			})
		}
		if len(actions) == 0 {
			continue
		}
		profiles = append(profiles, model.RegulatorProfile{
			Regulator:         regulator,
			Actions:           actions,
			CompaniesAffected: len(actions),
			PrimaryAction:     primaryAction(actions),
		})
	}
	return profiles
}

// classifyRelation ranks a sentence by the most severe regulatory language
// it contains. Investigation-class terms outrank enforcement, which outrank
// plain regulation.
func classifyRelation(sentence string) model.RelationLabel {
	lower := strings.ToLower(sentence)
	switch {
	case textutil.ContainsAny(lower, investigationTerms):
		return model.RelationInvestigation
	case textutil.ContainsAny(lower, enforcementTerms):
		return model.RelationEnforcement
	case textutil.ContainsAny(lower, regulationTerms):
		return model.RelationRegulation
	default:
		return model.RelationMonitoring
	}
}

func relationConfidence(r model.RelationLabel) string {
	if r == model.RelationInvestigation || r == model.RelationEnforcement {
		return "high"
	}
	return "medium"
}

// primaryAction is the most frequent relationship label, severity breaking ties.
func primaryAction(actions []model.RegulatorAction) model.RelationLabel {
	counts := make(map[model.RelationLabel]int)
	for _, a := range actions {
		counts[a.Relationship]++
	}
	primary := model.RelationMonitoring
	best := -1
	for label, count := range counts {
		if count > best || (count == best && relationRanks[label] > relationRanks[primary]) {
			best = count
			primary = label
		}
	}
	return primary
}

func trimEvidence(sentences []string) []string {
	if len(sentences) > maxEvidence {
		return sentences[:maxEvidence]
	}
	return sentences
}
