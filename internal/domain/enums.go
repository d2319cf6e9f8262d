package domain

// SearchMode is the generation flavor requested for a search.
type SearchMode string

const (
	SearchModeWeb        SearchMode = "web"
	SearchModeVideo      SearchMode = "video"
	SearchModeCompetitor SearchMode = "competitor"
)

func (m SearchMode) String() string { return string(m) }

func (m SearchMode) IsValid() bool {
	switch m {
	case SearchModeWeb, SearchModeVideo, SearchModeCompetitor:
		return true
	}
	return false
}

// IntentType classifies the search intent behind a keyword.
type IntentType string

const (
	IntentInformational IntentType = "Informational"
	IntentCommercial    IntentType = "Commercial"
	IntentTransactional IntentType = "Transactional"
	IntentNavigational  IntentType = "Navigational"
	IntentViral         IntentType = "Viral"
	IntentEntertainment IntentType = "Entertainment"
)

func (i IntentType) String() string { return string(i) }

func (i IntentType) IsValid() bool {
	switch i {
	case IntentInformational, IntentCommercial, IntentTransactional,
		IntentNavigational, IntentViral, IntentEntertainment:
		return true
	}
	return false
}

// TrendDirection is the short-term volume trend of a keyword.
type TrendDirection string

const (
	TrendUp      TrendDirection = "up"
	TrendDown    TrendDirection = "down"
	TrendNeutral TrendDirection = "neutral"
)

func (t TrendDirection) String() string { return string(t) }

func (t TrendDirection) IsValid() bool {
	switch t {
	case TrendUp, TrendDown, TrendNeutral:
		return true
	}
	return false
}

// ProjectStatus is the lifecycle state of a content project.
type ProjectStatus string

const (
	ProjectStatusDraft      ProjectStatus = "draft"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusPublished  ProjectStatus = "published"
	ProjectStatusArchived   ProjectStatus = "archived"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusDraft, ProjectStatusInProgress, ProjectStatusPublished, ProjectStatusArchived:
		return true
	}
	return false
}

// CanTransitionTo reports whether a project may move from s to next.
// Published projects can only be archived; archived projects can only be
// reopened as drafts.
func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case ProjectStatusDraft:
		return next == ProjectStatusInProgress || next == ProjectStatusArchived
	case ProjectStatusInProgress:
		return next == ProjectStatusDraft || next == ProjectStatusPublished || next == ProjectStatusArchived
	case ProjectStatusPublished:
		return next == ProjectStatusArchived
	case ProjectStatusArchived:
		return next == ProjectStatusDraft
	}
	return false
}

// Plan is the subscription tier of a profile.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

func (p Plan) String() string { return string(p) }

func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanPro:
		return true
	}
	return false
}
