package domain

import "time"

// MaxAuditEntries caps the audit log. Insertions beyond the cap evict the
// oldest entries.
const MaxAuditEntries = 100

// AuditAction tags an audit entry with the user-visible action it records.
type AuditAction string

const (
	AuditLoginOTPSent     AuditAction = "LOGIN_OTP_SENT"
	AuditLoginSuccess     AuditAction = "LOGIN_SUCCESS"
	AuditLoginFailed      AuditAction = "LOGIN_FAILED"
	AuditExpenseAdded     AuditAction = "EXPENSE_ADDED"
	AuditExpenseDeleted   AuditAction = "EXPENSE_DELETED"
	AuditIncomeUpdated    AuditAction = "INCOME_UPDATED"
	AuditBudgetSet        AuditAction = "BUDGET_SET"
	AuditCategoryAdded    AuditAction = "CATEGORY_ADDED"
	AuditCategoryRenamed  AuditAction = "CATEGORY_RENAMED"
	AuditCategoryRemoved  AuditAction = "CATEGORY_REMOVED"
	AuditCategoryReorder  AuditAction = "CATEGORY_REORDERED"
	AuditGoalAdded        AuditAction = "GOAL_ADDED"
	AuditGoalUpdated      AuditAction = "GOAL_UPDATED"
	AuditGoalDeleted      AuditAction = "GOAL_DELETED"
	AuditGoalContribution AuditAction = "GOAL_CONTRIBUTION"
	AuditDataImport       AuditAction = "DATA_IMPORT"
	AuditDataExport       AuditAction = "DATA_EXPORT"
	AuditAdviceGenerated  AuditAction = "ADVICE_GENERATED"
	AuditProfileReset     AuditAction = "PROFILE_RESET"
	AuditLogCleared       AuditAction = "AUDIT_CLEARED"
	AuditCurrencyChanged  AuditAction = "CURRENCY_CHANGED"
	AuditLanguageChanged  AuditAction = "LANGUAGE_CHANGED"
)

// AuditEntry is one record in the bounded, newest-first audit log. The log is
// a side channel written by mutation handlers and never read by computational
// logic; it exists purely for user-visible history.
type AuditEntry struct {
	Timestamp time.Time   `json:"timestamp"`
	Action    AuditAction `json:"action"`
	Details   string      `json:"details,omitempty"`
}
