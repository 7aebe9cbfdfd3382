package repoargs

type RepositoryName string

const (
	UserRepoName         RepositoryName = "user"
	InvestmentRepoName   RepositoryName = "investment"
	CommissionRepoName   RepositoryName = "commission"
	PackageRepoName      RepositoryName = "package"
	NotificationRepoName RepositoryName = "notification"
	FundRepoName         RepositoryName = "fund"
)
