package model

// NodeType classifies a network node.
type NodeType string

const (
	NodeRisk      NodeType = "risk"
	NodeCompany   NodeType = "company"
	NodeRegulator NodeType = "regulator"
)

// EdgeType classifies a co-occurrence edge.
type EdgeType string

const (
	EdgeCompanyRisk         EdgeType = "company_risk"
	EdgeRegulatoryOversight EdgeType = "regulatory_oversight"
)

// RelationLabel classifies the nature of a regulator-company relationship.
// Ordered by severity: monitoring < regulation < enforcement < investigation.
type RelationLabel string

const (
	RelationMonitoring    RelationLabel = "monitoring"
	RelationRegulation    RelationLabel = "regulation"
	RelationEnforcement   RelationLabel = "enforcement"
	RelationInvestigation RelationLabel = "investigation"
)

// NetworkNode is one node of the co-occurrence graph.
type NetworkNode struct {
	ID    string   `json:"id"`
	Type  NodeType `json:"type"`
	Score float64  `json:"score,omitempty"`
	Size  float64  `json:"size"`
	Color string   `json:"color"`
}

// RelationshipEdge is a weighted, typed link between two node ids.
// Weight increments on repeated co-occurrence.
type RelationshipEdge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   EdgeType `json:"type"`
	Weight int      `json:"value"`
}

// CompanyRiskLink ties a company to one risk category.
type CompanyRiskLink struct {
	Category      CategoryID `json:"risk_type"`
	RiskScore     float64    `json:"risk_score"`
	Strength      float64    `json:"relationship_strength"`
	CoOccurrences int        `json:"co_occurrence_count"`
	Evidence      []string   `json:"evidence_sentences"`
}

// CompanyExposure aggregates a company's risk relationships.
type CompanyExposure struct {
	Company       string            `json:"company"`
	Risks         []CompanyRiskLink `json:"associated_risks"`
	TotalExposure float64           `json:"total_risk_exposure"`
	PrimaryRisk   CategoryID        `json:"primary_risk"`
}

// RegulatorAction describes one regulator-company relationship.
type RegulatorAction struct {
	Company      string        `json:"company"`
	Relationship RelationLabel `json:"relationship_type"`
	Confidence   string        `json:"confidence"`
	Interactions int           `json:"interaction_count"`
	Amounts      []string      `json:"financial_impact,omitempty"`
	Evidence     []string      `json:"evidence_sentences"`
}

// RegulatorProfile aggregates a regulator's actions across companies.
type RegulatorProfile struct {
	Regulator         string            `json:"regulatory_body"`
	Actions           []RegulatorAction `json:"actions"`
	CompaniesAffected int               `json:"total_companies_affected"`
	PrimaryAction     RelationLabel     `json:"primary_action_type"`
}

// FinancialLink ties a company to one mentioned amount with its context.
type FinancialLink struct {
	Amount      string   `json:"amount"`
	Context     string   `json:"context"`
	Occurrences int      `json:"occurrence_count"`
	Evidence    []string `json:"evidence_sentences"`
}

// CompanyFinancials aggregates the amounts co-occurring with a company.
type CompanyFinancials struct {
	Company        string          `json:"company"`
	Impacts        []FinancialLink `json:"financial_impacts"`
	TotalMillions  float64         `json:"total_financial_exposure_millions"`
	PrimaryContext string          `json:"primary_impact_type"`
}

// NetworkSummary is the full output of the relationship builder.
type NetworkSummary struct {
	Nodes      []NetworkNode       `json:"nodes"`
	Edges      []RelationshipEdge  `json:"links"`
	Density    float64             `json:"network_density"`
	Companies  []CompanyExposure   `json:"company_relationships"`
	Regulators []RegulatorProfile  `json:"regulatory_relationships"`
	Financials []CompanyFinancials `json:"financial_relationships"`
}
