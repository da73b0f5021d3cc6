package etprimitive

import "time"

// AuditInfo 审计字段值对象：创建人/创建时间/修改人/修改时间
// 由处理层负责填写，持久化层照搬落库
type AuditInfo struct {
	CreateUser string
	CreateTime time.Time
	ModifyUser string
	ModifyTime time.Time
}

// StampCreate 创建打戳：写入创建人与创建时间，并同步一次修改打戳
// 创建字段写入后不再变更
func (a *AuditInfo) StampCreate(actor string, now time.Time) {
	a.CreateUser = actor
	a.CreateTime = now
	a.StampModify(actor, now)
}

// StampModify 修改打戳：覆盖修改人与修改时间，后写覆盖先写
func (a *AuditInfo) StampModify(actor string, now time.Time) {
	a.ModifyUser = actor
	a.ModifyTime = now
}
