// Package trackingnum 분산된 여러 인스턴스에서 조율 없이 고유한 추적 번호를 발급합니다.
//
// 추적 번호 형식:
//
//	<hostname>-<8자리 UUID 토큰>-<epoch 밀리초>-<6자리 시퀀스>
//	예: host-ab12cd34-1700000000000-000042
//
// 노드 식별자는 프로세스당 한 번만 만들어지고, 시퀀스는 [0, MaxSequence) 범위를 순환합니다.
// 같은 밀리초 안에서 시퀀스가 한 바퀴를 넘게 돌면 중복이 생길 수 있으며 이는 허용된 한계입니다.
package trackingnum

// component 로그에 기록되는 이 패키지의 컴포넌트 이름
const component = "trackingnum"
