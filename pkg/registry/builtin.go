package registry

import "github.com/hiveos/go-canonical/pkg/contract"

// Builtin returns the field contracts for the nine shipped Lab types. The
// slice is rebuilt on each call so callers can append their own specs before
// constructing a Registry without disturbing the defaults.
func Builtin() []contract.EntitySpec {
	return []contract.EntitySpec{
		{
			Type:        "brand",
			Label:       "Brand Lab",
			GraphKind:   "brand_foundation",
			RecordTable: "Brand Labs",
			Fields: []contract.FieldSpec{
				{Path: "positioning.statement", Label: "Positioning Statement", Type: contract.FieldTypeString, Required: true, MinLength: 15},
				{Path: "positioning.category", Label: "Category Frame", Type: contract.FieldTypeString},
				{Path: "valueProp.headline", Label: "Value Proposition Headline", Type: contract.FieldTypeString, Required: true, MinLength: 10},
				{Path: "differentiators.bullets", Label: "Differentiators", Type: contract.FieldTypeArray, Required: true, MinItems: 2},
				{Path: "icp.primaryAudience", Label: "Primary Audience", Type: contract.FieldTypeString, Required: true, MinLength: 10},
				{Path: "icp.secondaryAudiences", Label: "Secondary Audiences", Type: contract.FieldTypeArray},
				{Path: "toneOfVoice.attributes", Label: "Tone of Voice Attributes", Type: contract.FieldTypeArray},
				{Path: "proofPoints.items", Label: "Proof Points", Type: contract.FieldTypeArray},
			},
		},
		{
			Type:        "website",
			Label:       "Website Lab",
			GraphKind:   "website_experience",
			RecordTable: "Website Labs",
			Fields: []contract.FieldSpec{
				{Path: "conversionGoal.primary", Label: "Primary Conversion Goal", Type: contract.FieldTypeString, Required: true, MinLength: 10},
				{Path: "messagingAudit.findings", Label: "Messaging Audit Findings", Type: contract.FieldTypeArray, Required: true, MinItems: 2},
				{Path: "pageArchitecture.keyPages", Label: "Key Pages", Type: contract.FieldTypeArray, Required: true, MinItems: 3},
				{Path: "uxIssues.items", Label: "UX Issues", Type: contract.FieldTypeArray},
				{Path: "seoBaseline.summary", Label: "SEO Baseline Summary", Type: contract.FieldTypeString},
				{Path: "analytics.stack", Label: "Analytics Stack", Type: contract.FieldTypeArray},
			},
		},
		{
			Type:        "content",
			Label:       "Content Lab",
			GraphKind:   "content_engine",
			RecordTable: "Content Labs",
			Fields: []contract.FieldSpec{
				{Path: "pillars.themes", Label: "Content Pillars", Type: contract.FieldTypeArray, Required: true, MinItems: 2},
				{Path: "editorialStrategy.summary", Label: "Editorial Strategy", Type: contract.FieldTypeString, Required: true, MinLength: 20},
				{Path: "cadence.frequency", Label: "Publishing Cadence", Type: contract.FieldTypeString, Required: true},
				{Path: "distribution.channels", Label: "Distribution Channels", Type: contract.FieldTypeArray},
				{Path: "repurposing.map", Label: "Repurposing Map", Type: contract.FieldTypeObject},
			},
		},
		{
			Type:        "seo",
			Label:       "SEO Lab",
			GraphKind:   "organic_search",
			RecordTable: "SEO Labs",
			Fields: []contract.FieldSpec{
				{Path: "keywordStrategy.primaryClusters", Label: "Primary Keyword Clusters", Type: contract.FieldTypeArray, Required: true, MinItems: 3},
				{Path: "technicalAudit.summary", Label: "Technical Audit Summary", Type: contract.FieldTypeString, Required: true, MinLength: 20},
				{Path: "technicalAudit.criticalIssues", Label: "Critical Technical Issues", Type: contract.FieldTypeArray},
				{Path: "contentGaps.opportunities", Label: "Content Gap Opportunities", Type: contract.FieldTypeArray, Required: true, MinItems: 2},
				{Path: "backlinkProfile.assessment", Label: "Backlink Assessment", Type: contract.FieldTypeString},
			},
		},
		{
			Type:        "demand",
			Label:       "Demand Lab",
			GraphKind:   "demand_generation",
			RecordTable: "Demand Labs",
			Fields: []contract.FieldSpec{
				{Path: "channelMix.recommended", Label: "Recommended Channel Mix", Type: contract.FieldTypeArray, Required: true, MinItems: 2},
				{Path: "budgetAllocation.model", Label: "Budget Allocation Model", Type: contract.FieldTypeObject, Required: true},
				{Path: "targeting.segments", Label: "Targeting Segments", Type: contract.FieldTypeArray, Required: true, MinItems: 2},
				{Path: "offerStrategy.summary", Label: "Offer Strategy", Type: contract.FieldTypeString, Required: true, MinLength: 20},
				{Path: "benchmarks.costPerLead", Label: "Cost Per Lead Benchmark", Type: contract.FieldTypeNumber},
			},
		},
		{
			Type:        "lifecycle",
			Label:       "Lifecycle Lab",
			GraphKind:   "lifecycle_marketing",
			RecordTable: "Lifecycle Labs",
			Fields: []contract.FieldSpec{
				{Path: "stages.map", Label: "Lifecycle Stage Map", Type: contract.FieldTypeObject, Required: true},
				{Path: "triggers.events", Label: "Trigger Events", Type: contract.FieldTypeArray, Required: true, MinItems: 2},
				{Path: "nurture.sequences", Label: "Nurture Sequences", Type: contract.FieldTypeArray},
				{Path: "winback.strategy", Label: "Winback Strategy", Type: contract.FieldTypeString, Required: true, MinLength: 20},
				{Path: "scoring.model", Label: "Lead Scoring Model", Type: contract.FieldTypeObject},
			},
		},
		{
			Type:        "competitive",
			Label:       "Competitive Lab",
			GraphKind:   "competitive_landscape",
			RecordTable: "Competitive Labs",
			Fields: []contract.FieldSpec{
				{Path: "landscape.summary", Label: "Landscape Summary", Type: contract.FieldTypeString, Required: true, MinLength: 20},
				{Path: "competitors.profiles", Label: "Competitor Profiles", Type: contract.FieldTypeArray, Required: true, MinItems: 2},
				{Path: "positioningGaps.opportunities", Label: "Positioning Gaps", Type: contract.FieldTypeArray, Required: true, MinItems: 1},
				{Path: "pricingComparison.table", Label: "Pricing Comparison", Type: contract.FieldTypeObject},
				{Path: "winLoss.themes", Label: "Win/Loss Themes", Type: contract.FieldTypeArray},
			},
		},
		{
			Type:        "analytics",
			Label:       "Analytics Lab",
			GraphKind:   "measurement_framework",
			RecordTable: "Analytics Labs",
			Fields: []contract.FieldSpec{
				{Path: "kpiFramework.primary", Label: "Primary KPIs", Type: contract.FieldTypeArray, Required: true, MinItems: 2},
				{Path: "northStar.metric", Label: "North Star Metric", Type: contract.FieldTypeString, Required: true, MinLength: 5},
				{Path: "attribution.model", Label: "Attribution Model", Type: contract.FieldTypeString, Required: true},
				{Path: "dataGaps.issues", Label: "Data Gaps", Type: contract.FieldTypeArray, Required: true, MinItems: 1},
				{Path: "dashboards.specs", Label: "Dashboard Specs", Type: contract.FieldTypeArray},
			},
		},
		{
			Type:        "social",
			Label:       "Social Lab",
			GraphKind:   "social_presence",
			RecordTable: "Social Labs",
			Fields: []contract.FieldSpec{
				{Path: "channelStrategy.channels", Label: "Channel Strategy", Type: contract.FieldTypeArray, Required: true, MinItems: 2},
				{Path: "voice.guidelines", Label: "Voice Guidelines", Type: contract.FieldTypeString, Required: true, MinLength: 20},
				{Path: "cadence.postsPerWeek", Label: "Posts Per Week", Type: contract.FieldTypeNumber, Required: true},
				{Path: "communityPlaybook.summary", Label: "Community Playbook", Type: contract.FieldTypeString},
				{Path: "paidOrganicSplit.ratio", Label: "Paid/Organic Split", Type: contract.FieldTypeObject},
			},
		},
	}
}
