package health

import "context"

// Check 이름이 붙은 준비 상태 점검 항목입니다.
type Check struct {
	Name  string
	Ready func(ctx context.Context) bool
}

// StaticCheck 항상 같은 결과를 반환하는 점검 항목을 생성합니다.
func StaticCheck(name string, ok bool) Check {
	return Check{
		Name:  name,
		Ready: func(context.Context) bool { return ok },
	}
}

// DefaultChecks 기본 준비 상태 점검 항목을 반환합니다.
//
// 이 서비스는 외부 저장소나 연동 서비스를 갖지 않으므로 모든 항목이 항상 true입니다.
func DefaultChecks() []Check {
	return []Check{
		StaticCheck(CheckDatabase, true),
		StaticCheck(CheckCache, true),
		StaticCheck(CheckDependencies, true),
	}
}
