// Package validation 설정 값 등 외부 입력의 형식을 검증하는 함수를 제공합니다.
//
// 모든 함수는 상태를 갖지 않으며 동시 호출에 안전합니다.
package validation
