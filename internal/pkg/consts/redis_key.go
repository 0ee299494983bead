package consts

const (
	// EngagementTallyKey 候选人互动计数缓存，不含分数；格式变化时升级版本号
	EngagementTallyKey = "engagement:tally:v1"
	// EngagementTallyVersionKey 每次失效自增，写入前比对
	EngagementTallyVersionKey = "engagement:tally:version"
)

const (
	EngagementWarmLock = "lock:engagement:warm"
)
